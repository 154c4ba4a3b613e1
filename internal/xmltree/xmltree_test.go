package xmltree

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_BuildsTree(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<!-- saved list -->
<unit version="0.49.19">
  <entity chassis="Atlas" model="AS7-D" type="Biped">
    some stray text
    <pilot name="Jane" gunnery="4" piloting="5"/>
    <location index="0"><armor points="9"/></location>
  </entity>
  <entity chassis="Locust"/>
</unit>`

	root, err := Read(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "unit", root.Name)
	assert.Equal(t, "0.49.19", root.Value("version"))
	require.Len(t, root.Children, 2)

	atlas := root.Children[0]
	assert.Equal(t, "entity", atlas.Name)
	assert.Equal(t, []Attr{{"chassis", "Atlas"}, {"model", "AS7-D"}, {"type", "Biped"}}, atlas.Attrs)
	require.Len(t, atlas.Children, 2)
	assert.Equal(t, "pilot", atlas.Children[0].Name)
	assert.Len(t, atlas.ChildrenNamed("location"), 1)

	_, ok := root.Children[1].Attr("model")
	assert.False(t, ok)
	assert.False(t, root.Children[1].Has("model"))
	assert.Equal(t, "", root.Children[1].Value("model"))
}

func TestRead_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed tag", `<unit><entity chassis="Atlas"></unit>`},
		{"truncated", `<unit><entity chassis="Atlas">`},
		{"empty", ``},
		{"text only", `not xml at all`},
		{"two roots", `<unit/><unit/>`},
		{"bad attribute", `<unit version=1/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, root)
			assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
		})
	}
}

func TestRead_ErrorNamesElement(t *testing.T) {
	_, err := Read(strings.NewReader(`<record><kills><kill killed="1"></kills></record>`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<kill>")
}

func TestRead_Charset(t *testing.T) {
	// "Müller" in ISO-8859-1
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><unit><entity chassis=\"M\xfcller\"/></unit>"
	root, err := Read(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "Müller", root.Children[0].Value("chassis"))
}
