package tui

import (
	"testing"

	"github.com/MKhiriev/go-landing-builder/internal/editor"
	"github.com/stretchr/testify/assert"
)

func TestStateFeed_KeepsLatestSnapshot(t *testing.T) {
	f := newStateFeed()
	f.push(editor.State{Revision: 1})
	f.push(editor.State{Revision: 2})

	msg := f.wait()()
	assert.Equal(t, stateMsg{state: editor.State{Revision: 2}}, msg)
}

func TestStateFeed_Close(t *testing.T) {
	f := newStateFeed()
	f.close()
	f.close()

	f.push(editor.State{Revision: 3})
	assert.Nil(t, f.wait()())
}
