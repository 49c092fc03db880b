package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeScalarKinds(t *testing.T) {
	assert.Equal(t, KindNull, Native(nil).Kind())
	assert.Equal(t, KindBool, Native(true).Kind())
	assert.Equal(t, KindString, Native("hi").Kind())
	assert.Equal(t, KindNumber, Native(42).Kind())
	assert.Equal(t, KindNumber, Native(3.14).Kind())
	assert.Equal(t, KindSequence, Native([]any{1, 2}).Kind())
	assert.Equal(t, KindMapping, Native(map[string]any{"a": 1}).Kind())
}

func TestNativeTruthy(t *testing.T) {
	assert.False(t, Native(nil).Truthy())
	assert.False(t, Native(false).Truthy())
	assert.True(t, Native(true).Truthy())
	assert.False(t, Native("").Truthy())
	assert.True(t, Native("x").Truthy())
	assert.False(t, Native([]any{}).Truthy())
	assert.True(t, Native([]any{1}).Truthy())
	assert.True(t, Native(0).Truthy(), "numbers are always truthy, even zero")
	assert.True(t, Native(map[string]any{}).Truthy(), "mappings are always truthy")
}

func TestNativeChildMapping(t *testing.T) {
	v := Native(map[string]any{"a": map[string]any{"b": "c"}})
	child, ok := v.Child("a")
	require.True(t, ok)
	grandchild, ok := child.Child("b")
	require.True(t, ok)
	s, err := grandchild.Render()
	require.NoError(t, err)
	assert.Equal(t, "c", s)

	_, ok = v.Child("missing")
	assert.False(t, ok)
}

func TestNativeSequenceIndexChild(t *testing.T) {
	v := Native([]any{"x", "y", "z"})
	c, ok := v.Child("1")
	require.True(t, ok)
	s, _ := c.Render()
	assert.Equal(t, "y", s)

	_, ok = v.Child("not-a-number")
	assert.False(t, ok)

	_, ok = v.Child("99")
	assert.False(t, ok)
}

type person struct {
	Name string `json:"name"`
	Age  int
}

func TestNativeStructFields(t *testing.T) {
	v := Native(person{Name: "Ada", Age: 36})
	name, ok := v.Child("name")
	require.True(t, ok)
	s, _ := name.Render()
	assert.Equal(t, "Ada", s)

	age, ok := v.Child("Age")
	require.True(t, ok)
	assert.Equal(t, KindNumber, age.Kind())
}

func TestNativeMappingRenderFails(t *testing.T) {
	_, err := Native(map[string]any{"a": 1}).Render()
	assert.Error(t, err)
}

func TestNativeIterNonSequence(t *testing.T) {
	_, ok := Native(map[string]any{}).Iter()
	assert.False(t, ok)
	_, ok = Native("x").Iter()
	assert.False(t, ok)
}
