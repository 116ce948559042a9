package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(ran *[]string) *Dispatcher {
	d := NewDispatcher()
	d.Register("ledon", Command{
		Mode: "LED on",
		Ack:  "OK led on",
		Run:  func() { *ran = append(*ran, "ledon") },
	})
	d.Register("ledoff", Command{
		Mode: "LED off",
		Ack:  "OK led off",
		Run:  func() { *ran = append(*ran, "ledoff") },
	})
	return d
}

func TestDispatch_KnownToken(t *testing.T) {
	var ran []string
	d := newTestDispatcher(&ran)

	cmd, ok := d.Dispatch([]byte("ledon"))
	require.True(t, ok)
	assert.Equal(t, "LED on", cmd.Mode)
	assert.Equal(t, "OK led on", cmd.Ack)

	assert.Empty(t, ran, "Dispatch must not run the action itself")
	cmd.Run()
	assert.Equal(t, []string{"ledon"}, ran)
}

func TestDispatch_UnknownToken(t *testing.T) {
	var ran []string
	d := newTestDispatcher(&ran)

	cmd, ok := d.Dispatch([]byte("selfdestruct"))
	assert.False(t, ok)
	assert.Equal(t, NotRecognized, cmd.Ack)
	assert.Empty(t, cmd.Mode)
	assert.Nil(t, cmd.Run)
	assert.Empty(t, ran)
}

func TestDispatch_CaseSensitive(t *testing.T) {
	var ran []string
	d := newTestDispatcher(&ran)

	_, ok := d.Dispatch([]byte("LEDON"))
	assert.False(t, ok)
	_, ok = d.Dispatch([]byte("Ledon"))
	assert.False(t, ok)
}

func TestRegister_Replaces(t *testing.T) {
	var ran []string
	d := newTestDispatcher(&ran)
	d.Register("ledon", Command{Mode: "Lamp", Ack: "OK lamp"})

	cmd, ok := d.Dispatch([]byte("ledon"))
	require.True(t, ok)
	assert.Equal(t, "Lamp", cmd.Mode)
}
