package soap

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/sportsdata.wsdl")
	require.NoError(t, err)
	return data
}

func TestParseWSDL(t *testing.T) {
	def, err := ParseWSDL(loadFixture(t))
	require.NoError(t, err)

	assert.Equal(t, "http://msiggi.de/Sportsdata/Webservices", def.TargetNamespace)
	assert.Equal(t, "Sportsdata", def.Service)
	assert.Equal(t, "http://www.openligadb.de/Webservices/Sportsdata.asmx", def.Endpoint)
	assert.Len(t, def.Operations(), 21)

	op, ok := def.Operation("GetMatchdataByGroupLeagueSaison")
	require.True(t, ok)
	assert.Equal(t, "http://msiggi.de/Sportsdata/Webservices/GetMatchdataByGroupLeagueSaison", op.SOAPAction)
	assert.Equal(t, "GetMatchdataByGroupLeagueSaison", op.Input)
	assert.Equal(t, []Param{
		{Name: "groupOrderID", Type: "int"},
		{Name: "leagueShortcut", Type: "string"},
		{Name: "leagueSaison", Type: "string"},
	}, op.Params)

	op, ok = def.Operation("GetAvailLeagues")
	require.True(t, ok)
	assert.Empty(t, op.Params)

	_, ok = def.Operation("GetMatchdataByLeague")
	assert.False(t, ok)
}

func TestParseWSDL_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not xml", "this is not a service description"},
		{"wrong root", `<html xmlns="http://www.w3.org/1999/xhtml"><body/></html>`},
		{"soap 1.2 only", `<wsdl:definitions xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/" xmlns:soap12="http://schemas.xmlsoap.org/wsdl/soap12/" xmlns:tns="urn:x" targetNamespace="urn:x">
  <wsdl:binding name="B12" type="tns:P"><soap12:binding transport="http://schemas.xmlsoap.org/soap/http" /></wsdl:binding>
  <wsdl:service name="S"><wsdl:port name="P12" binding="tns:B12"><soap12:address location="http://example.com" /></wsdl:port></wsdl:service>
</wsdl:definitions>`},
		{"no address", `<definitions xmlns="http://schemas.xmlsoap.org/wsdl/" xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/" targetNamespace="urn:x">
  <binding name="B" type="P"><soap:binding transport="http://schemas.xmlsoap.org/soap/http" /></binding>
</definitions>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWSDL([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidWSDL)
		})
	}
}

func TestParseWSDL_DefaultNamespaceAndUnprefixedRefs(t *testing.T) {
	doc := `<definitions xmlns="http://schemas.xmlsoap.org/wsdl/" xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/" xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:scores">
  <types>
    <xs:schema targetNamespace="urn:scores">
      <xs:element name="ScoreRequest">
        <xs:complexType><xs:sequence><xs:element name="matchID" type="xs:int" /></xs:sequence></xs:complexType>
      </xs:element>
    </xs:schema>
  </types>
  <message name="ScoreIn"><part name="parameters" element="ScoreRequest" /></message>
  <portType name="ScoresPort"><operation name="Score"><input message="ScoreIn" /></operation></portType>
  <binding name="ScoresBinding" type="ScoresPort">
    <soap:binding transport="http://schemas.xmlsoap.org/soap/http" />
    <operation name="Score"><soap:operation soapAction="urn:scores#Score" /></operation>
  </binding>
  <service name="Scores"><port name="ScoresPort" binding="ScoresBinding"><soap:address location="http://scores.example.com/soap" /></port></service>
</definitions>`

	def, err := ParseWSDL([]byte(doc))
	require.NoError(t, err)

	op, ok := def.Operation("Score")
	require.True(t, ok)
	assert.Equal(t, "ScoreRequest", op.Input)
	assert.Equal(t, "urn:scores#Score", op.SOAPAction)
	assert.Equal(t, []Param{{Name: "matchID", Type: "int"}}, op.Params)
	assert.Equal(t, "http://scores.example.com/soap", def.Endpoint)
}
