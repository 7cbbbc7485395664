// Package input turns raw terminal bytes into navigation events.
//
// A Decoder reads one event per call from any byte source. Vim keys (hjkl)
// and arrow keys produce distinct event kinds carrying the same Direction, so
// a host can tell them apart or, more commonly, handle both through
// Event.Direction:
//
//	dec := input.NewDecoder(terminal.Std())
//	for {
//	    ev, err := dec.Next()
//	    if err != nil {
//	        return err
//	    }
//	    if dir, ok := ev.Direction(); ok {
//	        nav.Move(dir)
//	        continue
//	    }
//	    if ev.Kind == input.KindQuit {
//	        return nil
//	    }
//	}
//
// Bytes that match no mapping decode to an Unknown event, never an error.
// They are logged at debug level once a logger is set with terminal.SetLogger.
//
// Programs built on Bubble Tea can map tea.KeyMsg values onto the same event
// set with FromKeyMsg.
package input
