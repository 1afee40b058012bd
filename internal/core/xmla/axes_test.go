package xmla

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const axesResponse = `<root xmlns="urn:schemas-microsoft-com:xml-analysis:mddataset">
  <OlapInfo>
    <AxesInfo><AxisInfo name="Axis0"/></AxesInfo>
  </OlapInfo>
  <Axes>
    <Axis name="Axis0">
      <Tuples>
        <Tuple>
          <Member Hierarchy="Measures">
            <UName>[Measures].[Amount]</UName>
            <Caption>Amount</Caption>
            <LName>[Measures].[MeasuresLevel]</LName>
            <LNum>0</LNum>
            <DisplayInfo>0</DisplayInfo>
          </Member>
        </Tuple>
      </Tuples>
    </Axis>
    <Axis name="Axis1">
      <Tuples>
        <Tuple>
          <Member Hierarchy="[Ship Time]">
            <UName>[Time].[2020]</UName>
            <Caption>2020</Caption>
            <LName>[Time].[Year]</LName>
            <LNum>1</LNum>
            <DisplayInfo>131076</DisplayInfo>
          </Member>
          <Member Hierarchy="Geo">
            <UName>[Geo].[US]</UName>
            <Caption>US</Caption>
            <LName>[Geo].[Country]</LName>
            <LNum>1</LNum>
          </Member>
        </Tuple>
      </Tuples>
    </Axis>
  </Axes>
</root>`

func TestParseAxes(t *testing.T) {
	axes, err := ParseAxes(strings.NewReader(axesResponse))
	require.NoError(t, err)
	require.Len(t, axes, 2)

	assert.Equal(t, "Axis0", axes[0].Name)
	require.Len(t, axes[0].Tuples, 1)
	assert.Equal(t, Member{
		UniqueName:      "[Measures].[Amount]",
		Caption:         "Amount",
		LevelUniqueName: "[Measures].[MeasuresLevel]",
		DimensionName:   "Measures",
		LevelTrueName:   "[Measures].[MeasuresLevel]",
	}, axes[0].Tuples[0][0])

	tuple := axes[1].Tuples[0]
	require.Len(t, tuple, 2)
	assert.Equal(t, 1, tuple[0].LevelNumber)
	assert.Equal(t, int64(131076), tuple[0].DisplayInfo)
	assert.Equal(t, "[Ship Time].[Year]", tuple[0].LevelTrueName)
	assert.Equal(t, "[Geo].[Country]", tuple[1].LevelTrueName)
}

func TestLevelTrueName(t *testing.T) {
	assert.Equal(t, "[B].[L].[M]", levelTrueName("[A].[L].[M]", "B"))
	assert.Equal(t, "[A].[L]", levelTrueName("[A].[L]", ""))
	assert.Equal(t, "noBrackets", levelTrueName("noBrackets", "B"))
}

func TestParseAxes_Malformed(t *testing.T) {
	_, err := ParseAxes(strings.NewReader(`<Axes><Axis name="a"><Tuples></Axis>`))
	assert.ErrorIs(t, err, ErrMalformedDocument)
}
