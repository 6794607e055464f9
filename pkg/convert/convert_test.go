package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sku string

func ptr[T any](v T) *T { return &v }

func TestDeref(t *testing.T) {
	assert.Equal(t, "", Deref[string](nil))
	assert.Equal(t, "x", Deref(ptr("x")))
	assert.Equal(t, int32(7), DerefOr(nil, int32(7)))
	assert.Equal(t, int32(3), DerefOr(ptr(int32(3)), 7))
}

func TestToStringMap(t *testing.T) {
	assert.Nil(t, ToStringMap(nil))
	assert.Equal(t,
		map[string]string{"label": "prod", "empty": ""},
		ToStringMap(map[string]*string{"label": ptr("prod"), "empty": nil}))
}

func TestToSliceOfString(t *testing.T) {
	assert.Equal(t, []string{"10.0.0.4", "10.0.0.5"}, ToSliceOfString([]*string{ptr("10.0.0.4"), nil, ptr("10.0.0.5")}))
	assert.Empty(t, ToSliceOfString(nil))
}

func TestToEnumString(t *testing.T) {
	assert.Equal(t, "", ToEnumString[sku](nil))
	assert.Equal(t, "Basic", ToEnumString(ptr(sku("Basic"))))
}
