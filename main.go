// main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/gas/fancy-effects/effects"
	"github.com/gas/fancy-effects/logging"
	"github.com/gas/fancy-effects/modes"
	"github.com/gas/fancy-effects/shared"
	"github.com/gas/fancy-effects/utils"
)

func main() {
	// Inicializamos el logger al principio de todo.
	logFile, err := logging.Init()
	if err != nil {
		// Si no podemos crear el log, al menos lo notificamos por la consola.
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	// Nos aseguramos de que el archivo de log se cierre al salir de la aplicación.
	defer logFile.Close()

	// 1. Definir y parsear los argumentos de línea de comandos
	effectName := flag.String("effect", "", "Efecto a usar (por defecto, el de la config).")
	simpleOutput := flag.Bool("simple", false, "Vuelca los frames como texto plano sin TUI.")
	frameCount := flag.Int("frames", 0, "Cuántos frames volcar en modo simple (0 = el de la config).")
	listEffects := flag.Bool("list", false, "Lista los efectos disponibles y sale.")
	flag.Parse()

	if *listEffects {
		for _, name := range effects.Names() {
			fmt.Println(name)
		}
		return
	}

	// Forzamos truecolor: la gracia del programa es la salida coloreada,
	// también cuando va por un pipe.
	lipgloss.SetColorProfile(termenv.TrueColor)

	// 2. Conseguir el texto de entrada: argumentos, stdin, o el banner demo.
	text := strings.Join(flag.Args(), " ")
	if text == "" && !isatty.IsTerminal(os.Stdin.Fd()) {
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			log.Fatalf("Error leyendo stdin: %v", readErr)
		}
		text = strings.TrimRight(string(data), "\n")
	}
	if text == "" {
		text = utils.Banner("fancy effects")
	}

	// 3. Cargar config + tema y construir el efecto.
	res, err := shared.Setup(*effectName, text)
	if err != nil {
		logging.Log.Printf("Error en setup: %v", err)
		log.Fatalf("Error: %v", err)
	}
	if *frameCount > 0 {
		res.Config.General.MaxFrames = *frameCount
	}

	// 4. Comprobar si debemos usar el modo simple
	// Se activa si la salida no es una terminal (ej. un pipe) O si se usa el flag --simple.
	isPipe := !isatty.IsTerminal(os.Stdout.Fd())
	if isPipe || *simpleOutput {
		if err := modes.RunTTY(res); err != nil {
			logging.Log.Printf("Error en modo tty: %v", err)
			log.Fatalf("Error: %v", err)
		}
	} else {
		if err := modes.RunTUI(res); err != nil {
			logging.Log.Printf("Error en modo tui: %v", err)
			log.Fatalf("Error: %v", err)
		}
	}
}
