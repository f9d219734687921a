package soap

import (
	"encoding/json"
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

const matchdataXML = `<Matchdata xmlns="http://msiggi.de/Sportsdata/Webservices" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <matchID>8937</matchID>
  <matchDateTime>2010-12-05T17:30:00</matchDateTime>
  <matchDateTimeUTC>2010-12-05T16:30:00Z</matchDateTimeUTC>
  <nameTeam1>1899 Hoffenheim</nameTeam1>
  <nameTeam2>Bayer Leverkusen</nameTeam2>
  <matchIsFinished>true</matchIsFinished>
  <location xsi:nil="true" />
  <goals>
    <Goal><goalID>1</goalID><goalGetterName>Ibisevic</goalGetterName></Goal>
    <Goal><goalID>2</goalID><goalGetterName>Kießling</goalGetterName></Goal>
  </goals>
</Matchdata>`

func decodeMatch(t *testing.T) *Element {
	t.Helper()
	var e Element
	require.NoError(t, xml.Unmarshal([]byte(matchdataXML), &e))
	return &e
}

func TestElement_FieldAccess(t *testing.T) {
	match := decodeMatch(t)

	assert.Equal(t, "Matchdata", match.Name)
	assert.Equal(t, "1899 Hoffenheim", match.Get("nameTeam1"))
	assert.Equal(t, "", match.Get("doesNotExist"))
	assert.Nil(t, match.Field("doesNotExist").Field("deeper"))
	assert.True(t, match.Field("location").Nil)

	goals := match.Field("goals").Fields("Goal")
	require.Len(t, goals, 2)
	assert.Equal(t, "Ibisevic", goals[0].Get("goalGetterName"))
	assert.Equal(t, "Kießling", goals[1].Get("goalGetterName"))
}

func TestElement_TypedReads(t *testing.T) {
	match := decodeMatch(t)

	id, err := match.Field("matchID").Int()
	require.NoError(t, err)
	assert.Equal(t, 8937, id)

	finished, err := match.Field("matchIsFinished").Bool()
	require.NoError(t, err)
	assert.True(t, finished)

	local, err := match.Field("matchDateTime").Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2010, 12, 5, 17, 30, 0, 0, time.UTC), local)

	utc, err := match.Field("matchDateTimeUTC").Time()
	require.NoError(t, err)
	assert.True(t, utc.Equal(time.Date(2010, 12, 5, 16, 30, 0, 0, time.UTC)))

	_, err = match.Field("nameTeam1").Int()
	assert.Error(t, err)
	_, err = match.Field("nameTeam1").Time()
	assert.Error(t, err)

	var missing *Element
	_, err = missing.Int()
	assert.Error(t, err)
	assert.True(t, missing.IsEmpty())
}

func TestElement_Value(t *testing.T) {
	value, ok := decodeMatch(t).Value().(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "8937", value["matchID"])
	assert.Nil(t, value["location"])
	goals, ok := value["goals"].(map[string]any)["Goal"].([]any)
	require.True(t, ok)
	assert.Len(t, goals, 2)
}

func TestElement_ListShapeIndependentOfLength(t *testing.T) {
	decode := func(t *testing.T, doc string) map[string]any {
		t.Helper()
		var e Element
		require.NoError(t, xml.Unmarshal([]byte(doc), &e))
		value, ok := e.Value().(map[string]any)
		require.True(t, ok)
		return value
	}

	one := decode(t, `<ArrayOfSport><Sport><sportsID>1</sportsID></Sport></ArrayOfSport>`)
	assert.Equal(t, map[string]any{"Sport": []any{map[string]any{"sportsID": "1"}}}, one)

	two := decode(t, `<ArrayOfSport><Sport><sportsID>1</sportsID></Sport><Sport><sportsID>2</sportsID></Sport></ArrayOfSport>`)
	assert.Equal(t, map[string]any{"Sport": []any{
		map[string]any{"sportsID": "1"},
		map[string]any{"sportsID": "2"},
	}}, two)

	goals := decode(t, `<Matchdata><matchID>1</matchID><goals><Goal><goalID>7</goalID></Goal></goals></Matchdata>`)
	assert.Equal(t, "1", goals["matchID"])
	assert.Equal(t, map[string]any{"Goal": []any{map[string]any{"goalID": "7"}}}, goals["goals"])

	record := decode(t, `<Team><teamID>40</teamID></Team>`)
	assert.Equal(t, map[string]any{"teamID": "40"}, record)
}

func TestElement_IsEmpty(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want bool
	}{
		{"self-closing", `<GetGoalsByMatchResult />`, true},
		{"pretty-printed", "<GetGoalsByMatchResult>\n    \n  </GetGoalsByMatchResult>", true},
		{"text", `<GetCurrentGroupOrderIDResult>14</GetCurrentGroupOrderIDResult>`, false},
		{"children", `<GetGoalsByMatchResult><Goal><goalID>1</goalID></Goal></GetGoalsByMatchResult>`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Element
			require.NoError(t, xml.Unmarshal([]byte(tt.doc), &e))
			assert.Equal(t, tt.want, e.IsEmpty())
		})
	}
	assert.True(t, (*Element)(nil).IsEmpty())
}

func TestElement_Encoders(t *testing.T) {
	match := decodeMatch(t)

	data, err := json.Marshal(match)
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, "Bayer Leverkusen", fromJSON["nameTeam2"])

	data, err = msgpack.Marshal(match)
	require.NoError(t, err)
	var fromMsgpack map[string]any
	require.NoError(t, msgpack.Unmarshal(data, &fromMsgpack))
	assert.Equal(t, "Bayer Leverkusen", fromMsgpack["nameTeam2"])
}
