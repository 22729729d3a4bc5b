package anim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/milk9111/fireteam/anim"
	"github.com/milk9111/fireteam/anim/mock_anim"
)

func TestHelpersSkipEmptyNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mock_anim.NewMockSink(ctrl)

	sink.EXPECT().SetBool("walk", true).Times(1)
	sink.EXPECT().SetTrigger("shoot").Times(1)

	anim.SetBool(sink, "walk", true)
	anim.SetBool(sink, "", true)
	anim.SetFloat(sink, "", 3)
	anim.SetTrigger(sink, "shoot")
	anim.SetTrigger(nil, "shoot")
}

func TestRecorder(t *testing.T) {
	r := anim.NewRecorder()
	anim.SetFloat(r, "speed", 1.5)
	anim.SetTrigger(r, "shoot")
	anim.SetTrigger(r, "shoot")
	anim.SetBool(anim.Nop{}, "walk", true)

	assert.Equal(t, 1.5, r.Floats["speed"])
	assert.Equal(t, 2, r.Triggers["shoot"])
	assert.Empty(t, r.Bools)
}
