package soap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"
)

const (
	wsdlNamespace   = "http://schemas.xmlsoap.org/wsdl/"
	soap11Namespace = "http://schemas.xmlsoap.org/wsdl/soap/"
)

// ErrInvalidWSDL is returned when a service description cannot be used.
var ErrInvalidWSDL = errors.New("invalid wsdl")

// Definition is the subset of a WSDL document needed to call its SOAP 1.1
// document/literal operations.
type Definition struct {
	TargetNamespace string
	Service         string
	Endpoint        string
	operations      map[string]Operation
}

// Operation describes one remote operation of the SOAP 1.1 binding.
type Operation struct {
	Name       string
	SOAPAction string
	// Input is the local name of the request wrapper element.
	Input  string
	Params []Param
}

// Param is one positional argument of an operation, in schema order.
type Param struct {
	Name string
	Type string
}

// Operation looks up an operation by name.
func (d *Definition) Operation(name string) (Operation, bool) {
	op, ok := d.operations[name]
	return op, ok
}

// Operations returns the operation names in lexical order.
func (d *Definition) Operations() []string {
	names := make([]string, 0, len(d.operations))
	for name := range d.operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseWSDL reads a WSDL 1.1 document.
func ParseWSDL(data []byte) (*Definition, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWSDL, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "definitions" || namespaceURI(root) != wsdlNamespace {
		return nil, fmt.Errorf("%w: root element is not wsdl:definitions", ErrInvalidWSDL)
	}

	def := &Definition{
		TargetNamespace: root.SelectAttrValue("targetNamespace", ""),
		operations:      make(map[string]Operation),
	}

	elements := schemaElements(root)
	messages := make(map[string]string)
	for _, msg := range children(root, "message") {
		if part := first(children(msg, "part")); part != nil {
			messages[msg.SelectAttrValue("name", "")] = localName(part.SelectAttrValue("element", ""))
		}
	}

	binding := soapBinding(root)
	if binding == nil {
		return nil, fmt.Errorf("%w: no SOAP 1.1 binding", ErrInvalidWSDL)
	}
	bindingName := binding.SelectAttrValue("name", "")
	inputs := portTypeInputs(root, localName(binding.SelectAttrValue("type", "")))

	for _, op := range children(binding, "operation") {
		name := op.SelectAttrValue("name", "")
		operation := Operation{Name: name, Input: name}
		if soapOp := first(children(op, "operation")); soapOp != nil {
			operation.SOAPAction = soapOp.SelectAttrValue("soapAction", "")
		}
		if element, ok := messages[inputs[name]]; ok && element != "" {
			operation.Input = element
		}
		operation.Params = elements[operation.Input]
		def.operations[name] = operation
	}

	for _, service := range children(root, "service") {
		for _, port := range children(service, "port") {
			if localName(port.SelectAttrValue("binding", "")) != bindingName {
				continue
			}
			if address := first(children(port, "address")); address != nil {
				def.Service = service.SelectAttrValue("name", "")
				def.Endpoint = address.SelectAttrValue("location", "")
			}
		}
	}
	if def.Endpoint == "" {
		return nil, fmt.Errorf("%w: no service address for binding %s", ErrInvalidWSDL, bindingName)
	}
	return def, nil
}

// soapBinding returns the first binding carrying a SOAP 1.1 soap:binding child.
func soapBinding(root *etree.Element) *etree.Element {
	for _, binding := range children(root, "binding") {
		for _, c := range children(binding, "binding") {
			if namespaceURI(c) == soap11Namespace {
				return binding
			}
		}
	}
	return nil
}

// portTypeInputs maps operation name to input message name for one portType.
func portTypeInputs(root *etree.Element, portType string) map[string]string {
	inputs := make(map[string]string)
	for _, pt := range children(root, "portType") {
		if pt.SelectAttrValue("name", "") != portType {
			continue
		}
		for _, op := range children(pt, "operation") {
			if input := first(children(op, "input")); input != nil {
				inputs[op.SelectAttrValue("name", "")] = localName(input.SelectAttrValue("message", ""))
			}
		}
	}
	return inputs
}

// schemaElements maps every top-level schema element to its sequence fields.
func schemaElements(root *etree.Element) map[string][]Param {
	elements := make(map[string][]Param)
	for _, types := range children(root, "types") {
		for _, schema := range children(types, "schema") {
			for _, el := range children(schema, "element") {
				var params []Param
				for _, ct := range children(el, "complexType") {
					for _, seq := range children(ct, "sequence") {
						for _, field := range children(seq, "element") {
							params = append(params, Param{
								Name: field.SelectAttrValue("name", ""),
								Type: localName(field.SelectAttrValue("type", "")),
							})
						}
					}
				}
				elements[el.SelectAttrValue("name", "")] = params
			}
		}
	}
	return elements
}

// children returns the child elements with the given local tag, whatever
// prefix the document bound to their namespace.
func children(e *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, c := range e.ChildElements() {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

func first(elements []*etree.Element) *etree.Element {
	if len(elements) == 0 {
		return nil
	}
	return elements[0]
}

// namespaceURI resolves the element prefix against the xmlns declarations in
// scope.
func namespaceURI(e *etree.Element) string {
	for el := e; el != nil; el = el.Parent() {
		for _, attr := range el.Attr {
			if e.Space == "" && attr.Space == "" && attr.Key == "xmlns" {
				return attr.Value
			}
			if e.Space != "" && attr.Space == "xmlns" && attr.Key == e.Space {
				return attr.Value
			}
		}
	}
	return ""
}

// localName strips a namespace prefix from a QName.
func localName(qname string) string {
	if i := strings.LastIndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}
