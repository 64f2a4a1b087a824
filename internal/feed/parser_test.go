package feed

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

const fullDocument = `{
  "Spele": {
    "Laiks": "2009/07/15",
    "Vieta": "Skonto stadions",
    "Skatitaji": 4500,
    "VT": {"Vards": "Janis", "Uzvards": "Ozols"},
    "T": [
      {"Vards": "Peteris", "Uzvards": "Kalns"},
      {"Vards": "Andris", "Uzvards": "Liepa"}
    ],
    "Komanda": [
      {
        "Nosaukums": "Riga FC",
        "Speletaji": {
          "Speletajs": [
            {"Nr": 1, "Vards": "Igors", "Uzvards": "Bergs", "Loma": "V"},
            {"Nr": 7, "Vards": "Maris", "Uzvards": "Zarins", "Loma": "U"}
          ]
        },
        "Varti": {
          "VG": {"Nr": 7, "Laiks": "41:18", "Sitiens": "J", "P": {"Nr": 1}}
        },
        "Sodi": {
          "Sods": [
            {"Nr": 7, "Laiks": "12:00"},
            {"Nr": 7, "Laiks": "55:30"}
          ]
        },
        "Mainas": {
          "Maina": {"Nr1": 7, "Nr2": 1, "Laiks": "70:00"}
        }
      },
      {
        "Nosaukums": "Ventspils",
        "Speletaji": {
          "Speletajs": {"Nr": 10, "Vards": "Olegs", "Uzvards": "Krasts", "Loma": "A"}
        },
        "Varti": "",
        "Sodi": "",
        "Mainas": ""
      }
    ]
  }
}`

func TestParse_FullDocument(t *testing.T) {
	doc, err := Parse([]byte(fullDocument))
	require.NoError(t, err)

	require.Equal(t, "2009/07/15", doc.Date)
	require.Equal(t, "Skonto stadions", doc.Venue)
	require.NotNil(t, doc.Spectators)
	require.Equal(t, 4500, *doc.Spectators)
	require.Len(t, doc.Teams, 2)
	require.Equal(t, "Janis", doc.MainReferee.FirstName)
	require.Len(t, doc.Assistants, 2)

	home := doc.Teams[0]
	require.Equal(t, "Riga FC", home.Name)
	require.Len(t, home.Roster.Players, 2)
	require.Len(t, home.Goals.Goals, 1)
	require.Len(t, home.Cards.Cards, 2)
	require.Len(t, home.Substitutions.Substitutions, 1)

	g := home.Goals.Goals[0]
	require.Equal(t, 7, g.Number)
	require.True(t, g.IsPenalty())
	require.Len(t, g.Assists, 1)
	require.Equal(t, 1, g.Assists[0].Number)
}

func TestParse_SingleObjectCollections(t *testing.T) {
	doc, err := Parse([]byte(fullDocument))
	require.NoError(t, err)

	// The away roster arrives as a bare object, not a list.
	away := doc.Teams[1]
	require.Len(t, away.Roster.Players, 1)
	require.Equal(t, 10, away.Roster.Players[0].Number)
}

func TestParse_EmptyStringBlocks(t *testing.T) {
	doc, err := Parse([]byte(fullDocument))
	require.NoError(t, err)

	away := doc.Teams[1]
	require.Empty(t, away.Goals.Goals)
	require.Empty(t, away.Cards.Cards)
	require.Empty(t, away.Substitutions.Substitutions)
}

func TestParse_RejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{{`},
		{name: "bad date", body: `{"Spele": {"Laiks": "15.07.2009", "Vieta": "x", "Skatitaji": 1,
			"VT": {"Vards": "A", "Uzvards": "B"},
			"Komanda": [
				{"Nosaukums": "H", "Speletaji": {"Speletajs": {"Nr": 1, "Vards": "a", "Uzvards": "b", "Loma": "V"}}},
				{"Nosaukums": "A", "Speletaji": {"Speletajs": {"Nr": 1, "Vards": "c", "Uzvards": "d", "Loma": "V"}}}
			]}}`},
		{name: "one team", body: `{"Spele": {"Laiks": "2009/07/15", "Vieta": "x", "Skatitaji": 1,
			"VT": {"Vards": "A", "Uzvards": "B"},
			"Komanda": [
				{"Nosaukums": "H", "Speletaji": {"Speletajs": {"Nr": 1, "Vards": "a", "Uzvards": "b", "Loma": "V"}}}
			]}}`},
		{name: "missing venue", body: `{"Spele": {"Laiks": "2009/07/15", "Skatitaji": 1,
			"VT": {"Vards": "A", "Uzvards": "B"},
			"Komanda": [
				{"Nosaukums": "H", "Speletaji": {"Speletajs": {"Nr": 1, "Vards": "a", "Uzvards": "b", "Loma": "V"}}},
				{"Nosaukums": "A", "Speletaji": {"Speletajs": {"Nr": 1, "Vards": "c", "Uzvards": "d", "Loma": "V"}}}
			]}}`},
		{name: "missing spectators", body: `{"Spele": {"Laiks": "2009/07/15", "Vieta": "x",
			"VT": {"Vards": "A", "Uzvards": "B"},
			"Komanda": [
				{"Nosaukums": "H", "Speletaji": {"Speletajs": {"Nr": 1, "Vards": "a", "Uzvards": "b", "Loma": "V"}}},
				{"Nosaukums": "A", "Speletaji": {"Speletajs": {"Nr": 1, "Vards": "c", "Uzvards": "d", "Loma": "V"}}}
			]}}`},
		{name: "missing referee", body: `{"Spele": {"Laiks": "2009/07/15", "Vieta": "x", "Skatitaji": 1,
			"Komanda": [
				{"Nosaukums": "H", "Speletaji": {"Speletajs": {"Nr": 1, "Vards": "a", "Uzvards": "b", "Loma": "V"}}},
				{"Nosaukums": "A", "Speletaji": {"Speletajs": {"Nr": 1, "Vards": "c", "Uzvards": "d", "Loma": "V"}}}
			]}}`},
		{name: "empty roster", body: `{"Spele": {"Laiks": "2009/07/15", "Vieta": "x", "Skatitaji": 1,
			"VT": {"Vards": "A", "Uzvards": "B"},
			"Komanda": [
				{"Nosaukums": "H", "Speletaji": {}},
				{"Nosaukums": "A", "Speletaji": {"Speletajs": {"Nr": 1, "Vards": "c", "Uzvards": "d", "Loma": "V"}}}
			]}}`},
		{name: "bad event time", body: `{"Spele": {"Laiks": "2009/07/15", "Vieta": "x", "Skatitaji": 1,
			"VT": {"Vards": "A", "Uzvards": "B"},
			"Komanda": [
				{"Nosaukums": "H",
				 "Speletaji": {"Speletajs": {"Nr": 1, "Vards": "a", "Uzvards": "b", "Loma": "V"}},
				 "Varti": {"VG": {"Nr": 1, "Laiks": "73.15"}}},
				{"Nosaukums": "A", "Speletaji": {"Speletajs": {"Nr": 1, "Vards": "c", "Uzvards": "d", "Loma": "V"}}}
			]}}`},
		{name: "negative spectators", body: `{"Spele": {"Laiks": "2009/07/15", "Vieta": "x", "Skatitaji": -5,
			"VT": {"Vards": "A", "Uzvards": "B"},
			"Komanda": [
				{"Nosaukums": "H", "Speletaji": {"Speletajs": {"Nr": 1, "Vards": "a", "Uzvards": "b", "Loma": "V"}}},
				{"Nosaukums": "A", "Speletaji": {"Speletajs": {"Nr": 1, "Vards": "c", "Uzvards": "d", "Loma": "V"}}}
			]}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.body))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrMalformed), "want ErrMalformed, got %v", err)
		})
	}
}

func TestOneOrMany_Null(t *testing.T) {
	var items OneOrMany[AssistRef]
	require.NoError(t, items.UnmarshalJSON([]byte("null")))
	require.Empty(t, items)
}
