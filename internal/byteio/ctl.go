package byteio

import (
	"strconv"
	"strings"
)

// C0Ctls contains the classic ASCII control mnemonics.
var C0Ctls = [32]string{
	"<NUL>", "<SOH>", "<STX>", "<ETX>", "<EOT>", "<ENQ>", "<ACK>", "<BEL>",
	"<BS>", "<HT>", "<NL>", "<VT>", "<NP>", "<CR>", "<SO>", "<SI>",
	"<DLE>", "<DC1>", "<DC2>", "<DC3>", "<DC4>", "<NAK>", "<SYN>", "<ETB>",
	"<CAN>", "<EM>", "<SUB>", "<ESC>", "<FS>", "<GS>", "<RS>", "<US>",
}

// CaretForm computes the ^-escaped printable form of a C0 control byte or
// DEL; it returns "" for any other byte.
func CaretForm(b byte) string {
	if b < 0x20 || b == 0x7f {
		return "^" + string(rune(b^0x40))
	}
	return ""
}

// Name returns a printable form of b for logs and dumps: a mnemonic like
// <NL> for C0 controls, <SP> and <DEL>, a quoted character for other
// printable ASCII, and a hex escape for everything else.
func Name(b byte) string {
	switch {
	case b < 0x20:
		return C0Ctls[b]
	case b == 0x20:
		return "<SP>"
	case b == 0x7f:
		return "<DEL>"
	case b < 0x7f:
		return strconv.QuoteRune(rune(b))
	default:
		return hexForm(b)
	}
}

// Escape renders p as a single printable log line: printable ASCII is kept,
// C0 controls and DEL are written in caret form, and all other bytes as hex
// escapes. Backslash and caret are escaped with a backslash.
func Escape(p []byte) string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, b := range p {
		if b == '\\' || b == '^' {
			sb.WriteByte('\\')
			sb.WriteByte(b)
		} else if cf := CaretForm(b); cf != "" {
			sb.WriteString(cf)
		} else if b >= 0x80 {
			sb.WriteString(hexForm(b))
		} else {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

func hexForm(b byte) string {
	return "\\x" + strconv.FormatUint(uint64(b)|0x100, 16)[1:]
}
