// Package command maps literal text tokens received over a serial link
// to named actions.
package command

// NotRecognized is the reply for input matching no registered token.
const NotRecognized = "ERR not recognized"

// Command is one remotely triggerable action.
type Command struct {
	Mode string // short name for the status display
	Ack  string // reply sent back over the link
	Run  func() // the action itself; may be nil
}

// Dispatcher looks commands up by their literal token. Matching is exact
// and case sensitive: "LEDON" does not select "ledon".
type Dispatcher struct {
	commands map[string]Command
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{commands: make(map[string]Command)}
}

// Register binds token to cmd, replacing any previous binding.
func (d *Dispatcher) Register(token string, cmd Command) {
	d.commands[token] = cmd
}

// Dispatch resolves token to its command. On a miss ok is false and the
// returned command carries only the NotRecognized ack. Dispatch never
// runs the action; the caller decides when (typically after updating the
// display and sending the ack).
func (d *Dispatcher) Dispatch(token []byte) (cmd Command, ok bool) {
	cmd, ok = d.commands[string(token)]
	if !ok {
		return Command{Ack: NotRecognized}, false
	}
	return cmd, true
}
