// modes/tty.go
package modes

import (
	"fmt"

	"github.com/gas/fancy-effects/shared"
)

// RunTTY ejecuta la lógica de volcado en texto plano: pide frames de forma
// síncrona y los imprime hasta llegar al límite o hasta que el efecto
// termine. Para efectos cíclicos el límite de frames es lo único que para.
func RunTTY(res *shared.SetupResult) error {
	it, err := res.Effect.Frames()
	if err != nil {
		return err
	}

	maxFrames := res.Config.General.MaxFrames
	if maxFrames <= 0 {
		maxFrames = 120
	}

	for i := 0; i < maxFrames; i++ {
		frame, err := it.Next()
		if err != nil {
			return err
		}
		fmt.Println(frame)
		if it.Done() {
			break
		}
		fmt.Println("---") // Añadimos un separador simple
	}
	return nil
}
