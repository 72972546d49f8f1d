package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesOrder(t *testing.T) {
	obj, err := Parse([]byte(`{"zeta":1,"alpha":{"b":true,"a":null},"mid":["x",2]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())

	alpha, ok := obj.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, alpha.(Object).Keys())

	mid, _ := obj.Get("mid")
	assert.Equal(t, []any{"x", json.Number("2")}, mid)
}

func TestParse_RejectsNonObjects(t *testing.T) {
	_, err := Parse([]byte(`[1,2]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestObject_SetReplacesInPlace(t *testing.T) {
	obj := Object{{"a", 1}, {"b", 2}}
	obj.Set("a", 3)
	obj.Set("c", 4)

	assert.Equal(t, Object{{"a", 3}, {"b", 2}, {"c", 4}}, obj)
}

func TestObject_Lookup(t *testing.T) {
	obj, err := Parse([]byte(`{"steal":{"directories":{"lib":"src"}}}`))
	require.NoError(t, err)

	lib, ok := obj.Lookup("steal", "directories", "lib")
	assert.True(t, ok)
	assert.Equal(t, "src", lib)

	_, ok = obj.Lookup("steal", "main")
	assert.False(t, ok)

	_, ok = obj.Lookup("steal", "directories", "lib", "deeper")
	assert.False(t, ok)
}

func TestEncode(t *testing.T) {
	obj := Object{
		{"name", "my-app"},
		{"scripts", Object{{"test", "npm run jshint && npm run testee"}}},
		{"files", []any{"src"}},
		{"private", true},
	}

	data, err := Encode(obj)
	require.NoError(t, err)

	want := `{
  "name": "my-app",
  "scripts": {
    "test": "npm run jshint && npm run testee"
  },
  "files": [
    "src"
  ],
  "private": true
}
`
	assert.Equal(t, want, string(data))
}

func TestEncode_RoundTripKeepsNumbers(t *testing.T) {
	in := []byte(`{"b":1.50,"a":[{"y":1,"x":2}]}`)
	obj, err := Parse(in)
	require.NoError(t, err)

	raw, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"b":1.50,"a":[{"y":1,"x":2}]}`, string(raw))
}

func TestRead(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, Object{}, Read(filepath.Join(dir, "package.json")), "missing file yields empty object")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o644))
	assert.Equal(t, Object{}, Read(bad), "malformed file yields empty object")

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"name":"x"}`), 0o644))
	assert.Equal(t, "x", Read(good).String("name"))
}
