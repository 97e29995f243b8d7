// Package printer delivers rendered recipe documents to an output sink.
//
// ESCPOS encodes directives as ESC/POS commands for thermal receipt printers
// and buffers them until Print. Console writes a plain-text preview for dry
// runs. Play walks a render.Document in order, stops at the first sink
// failure and reports it with the DEVICE error code.
//
// Usage:
//
//	p, err := printer.OpenDevice("/dev/usb/lp0")
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	ack := printer.NewLineAcknowledger(os.Stdin, os.Stderr)
//	if err := printer.Play(ctx, p, doc, ack); err != nil {
//	    return err
//	}
package printer
