package xmla

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tabularResponse = `<?xml version="1.0"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <cxmla:ExecuteResponse xmlns:cxmla="urn:schemas-microsoft-com:xml-analysis">
      <cxmla:return>
        <root xmlns="urn:schemas-microsoft-com:xml-analysis:rowset"
              xmlns:xsd="http://www.w3.org/2001/XMLSchema"
              xmlns:sql="urn:schemas-microsoft-com:xml-sql">
          <xsd:schema>
            <xsd:complexType name="row">
              <xsd:sequence>
                <xsd:element minOccurs="0" name="Time_x0020_Year" sql:field="[Time].[Year]" type="xsd:string"/>
                <xsd:element minOccurs="0" name="Measures_x0020_Amount" sql:field="[Measures].[Amount]" type="xsd:double"/>
                <xsd:element minOccurs="0" name="Comment" type="xsd:string"/>
              </xsd:sequence>
              <xsd:sequence>
                <xsd:element name="Ignored" sql:field="ignored"/>
              </xsd:sequence>
            </xsd:complexType>
          </xsd:schema>
          <CubeName>Sales</CubeName>
          <row>
            <Time_x0020_Year>2020</Time_x0020_Year>
            <Measures_x0020_Amount>10.5</Measures_x0020_Amount>
          </row>
          <row>
            <Measures_x0020_Amount>7</Measures_x0020_Amount>
            <Time_x0020_Year>2021</Time_x0020_Year>
            <Comment>late <b>entry</b></Comment>
          </row>
        </root>
      </cxmla:return>
    </cxmla:ExecuteResponse>
  </soap:Body>
</soap:Envelope>`

func TestParseTabular(t *testing.T) {
	rs, err := ParseTabular(strings.NewReader(tabularResponse))
	require.NoError(t, err)

	assert.Equal(t, "Sales", rs.CubeName)
	assert.Equal(t, []Column{
		{Name: "Time_x0020_Year", Field: "[Time].[Year]"},
		{Name: "Measures_x0020_Amount", Field: "[Measures].[Amount]"},
		{Name: "Comment"},
	}, rs.Columns)
	assert.Equal(t, []string{"[Time].[Year]", "[Measures].[Amount]", "Comment"}, rs.Headers())

	require.Len(t, rs.Rows, 2)
	assert.Equal(t, []string{"2020", "10.5"}, rs.Rows[0].Values())
	assert.Equal(t, []string{"7", "2021", "late entry"}, rs.Rows[1].Values())

	year, ok := rs.Rows[1].Get("Time_x0020_Year")
	require.True(t, ok)
	assert.Equal(t, "2021", year)

	_, ok = rs.Rows[0].Get("Comment")
	assert.False(t, ok)
}

func TestParseTabular_IgnoreFirstRow(t *testing.T) {
	rs, err := ParseTabular(strings.NewReader(tabularResponse), WithIgnoreFirstRow())
	require.NoError(t, err)

	require.Len(t, rs.Rows, 1)
	year, _ := rs.Rows[0].Get("Time_x0020_Year")
	assert.Equal(t, "2021", year)
}

func TestParseTabular_Empty(t *testing.T) {
	rs, err := ParseTabular(strings.NewReader(`<root/>`))
	require.NoError(t, err)
	assert.Empty(t, rs.Columns)
	assert.Empty(t, rs.Rows)
	assert.Empty(t, rs.Headers())
}

func TestParseTabular_Malformed(t *testing.T) {
	_, err := ParseTabular(strings.NewReader(`<root><row><a>1</row></root>`))
	assert.ErrorIs(t, err, ErrMalformedDocument)

	_, err = ParseTabular(strings.NewReader(`<root><row><a>1</a>`))
	assert.ErrorIs(t, err, ErrMalformedDocument)
}
