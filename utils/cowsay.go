// utils/cowsay.go
package utils

import (
	"fmt"
	"strings"
)

// Banner crea el texto de demostración que se anima cuando el usuario no
// pasa ningún texto: un cowsay simple con el mensaje dado.
func Banner(message string) string {
	border := strings.Repeat("-", len(message)+2)
	return fmt.Sprintf(" %s\n< %s >\n %s\n   \\\n    \\\n        .--.\n       |o_o |\n       |:_/ |\n      //   \\ \\\n     (|     | )\n    /'\\_   _/`\\\n    \\___)=(___/", border, message, border)
}
