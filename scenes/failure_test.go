package scenes

import (
	"errors"
	"fmt"
	"testing"

	"github.com/automoto/tilewalk/assets"
	"github.com/stretchr/testify/assert"
)

func TestFailureMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "Something went wrong."},
		{
			"unresolvable",
			&SceneLoadError{Scene: "indoor", Err: &assets.MapParseError{Kind: assets.ParseUnresolvable, Ref: "indoor.tmx", Err: errors.New("gone")}},
			"Map not found: indoor.tmx",
		},
		{
			"malformed",
			&SceneLoadError{Scene: "outdoor", Err: &assets.MapParseError{Kind: assets.ParseMalformed, Ref: "outdoor.json", Err: errors.New("bad")}},
			"Map is damaged: outdoor.json",
		},
		{"unknown", fmt.Errorf("%w: attic", ErrUnknownScene), "Unknown scene."},
		{"other", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewFailureScene(nil, tt.err).Message())
		})
	}
}
