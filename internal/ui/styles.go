package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/caja/internal/model"
	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// Separator prints a green rule between blocks of output.
func Separator() {
	pterm.Println(pterm.Green("----------------------------------------"))
}

// BoxLabel renders the box icon and name in the box color, if it has one.
func BoxLabel(box *model.Box) string {
	label := box.Name
	if box.Icon != nil {
		label = *box.Icon + " " + label
	}

	if box.Color != nil {
		if rgb, ok := parseHex(*box.Color); ok {
			return rgb.Sprint(label)
		}
	}
	return label
}

func parseHex(hex string) (pterm.RGB, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return pterm.RGB{}, false
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return pterm.RGB{}, false
	}
	return pterm.NewRGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
}

// TypeColor colors s green for income and red for expense.
func TypeColor(t model.TxType, s string) string {
	if t == model.TxIncome {
		return pterm.Green(s)
	}
	return pterm.Red(s)
}
