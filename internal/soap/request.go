package soap

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"
)

// request is the document/literal wrapper element for one call. Arguments
// are written in Params order under the target namespace.
type request struct {
	namespace string
	operation Operation
	values    []string
}

func newRequest(namespace string, op Operation, args []any) (*request, error) {
	if len(args) != len(op.Params) {
		return nil, fmt.Errorf("%w: %s expects %d, got %d", ErrArgumentCount, op.Name, len(op.Params), len(args))
	}
	values := make([]string, len(args))
	for i, arg := range args {
		values[i] = formatArg(arg)
	}
	return &request{namespace: namespace, operation: op, values: values}, nil
}

// MarshalXML writes the wrapper element and its parameters.
func (r *request) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{
		Name: xml.Name{Local: r.operation.Input},
		Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns"}, Value: r.namespace}},
	}

	tokens := []xml.Token{start}
	for i, param := range r.operation.Params {
		t := xml.StartElement{Name: xml.Name{Local: param.Name}}
		tokens = append(tokens, t, xml.CharData(r.values[i]), xml.EndElement{Name: t.Name})
	}
	tokens = append(tokens, xml.EndElement{Name: start.Name})

	for _, t := range tokens {
		if err := e.EncodeToken(t); err != nil {
			return err
		}
	}
	return e.Flush()
}

func formatArg(arg any) string {
	switch v := arg.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
