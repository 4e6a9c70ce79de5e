package pkcs1v15

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var (
	_ fmt.Formatter  = (*Signature)(nil)
	_ fmt.Stringer   = (*Signature)(nil)
	_ fmt.GoStringer = (*Signature)(nil)
	_ slog.LogValuer = (*Signature)(nil)
)

// Hex renders the encoded signature as two hex digits per octet, without
// prefix or separators.
func (sig *Signature) Hex(upper bool) string {
	s := hex.EncodeToString(sig.Bytes())
	if upper {
		return strings.ToUpper(s)
	}
	return s
}

// String returns the uppercase hex form.
func (sig *Signature) String() string {
	return sig.Hex(true)
}

// GoString returns the diagnostic form, e.g. Signature("00ff").
func (sig *Signature) GoString() string {
	return fmt.Sprintf("Signature(%q)", sig.Hex(false))
}

// Format implements fmt.Formatter.
//
//	%x      lowercase hex
//	%X      uppercase hex
//	%s, %v  uppercase hex
//	%q      quoted uppercase hex
//	%#v     Signature("<lowercase hex>")
func (sig *Signature) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x':
		_, _ = io.WriteString(f, sig.Hex(false))
	case 'X':
		_, _ = io.WriteString(f, sig.Hex(true))
	case 'v':
		if f.Flag('#') {
			_, _ = io.WriteString(f, sig.GoString())
			return
		}
		_, _ = io.WriteString(f, sig.String())
	case 's':
		_, _ = io.WriteString(f, sig.String())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", sig.String())
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(pkcs1v15.Signature=%s)", verb, sig.String())
	}
}

// LogValue renders the signature for structured logging.
func (sig *Signature) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("size", sig.size),
		slog.String("value", sig.Hex(false)),
	)
}
