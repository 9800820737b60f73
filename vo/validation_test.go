package vo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationsAdd(t *testing.T) {
	vs := Validations{}
	vs.add(ValidationLevelInfo, "test", "default")
	if len(vs) != 1 {
		t.Fatal("wrong length")
	}
}

func TestValidationsErr(t *testing.T) {
	vs := Validations{}
	assert.NoError(t, vs.Err())
	errFn, warnFn, _ := vs.Group("london/restaurants/trattoria-x")
	warnFn("no image")
	assert.False(t, vs.HasErrors())
	assert.NoError(t, vs.Err())
	errFn("missing name")
	assert.True(t, vs.HasErrors())
	assert.Equal(t, 1, vs.Count(ValidationLevelError))
	assert.Equal(t, 1, vs.Count(ValidationLevelWarning))
	err := vs.Err()
	assert.EqualError(t, err, "validation failed: london/restaurants/trattoria-x: missing name")
}
