// logging/logger.go
package logging

import (
	"io"
	"log"
	"os"
)

var (
	// Log es nuestro logger global que usaremos en toda la aplicación.
	// Arranca descartando todo; Init lo apunta al archivo real. Así los
	// paquetes pueden loguear sin preocuparse de si alguien llamó a Init.
	Log = log.New(io.Discard, "", 0)
)

func Init() (*os.File, error) {
	// Abrimos (o creamos) un archivo de log.
	// Usar /tmp/ es una forma sencilla de asegurarse de que se puede escribir.
	logFile, err := os.OpenFile("/tmp/fancy-effects.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
	if err != nil {
		return nil, err
	}

	Log = log.New(logFile, "fancy-effects: ", log.LstdFlags|log.Lshortfile)
	Log.Println("Logging system initialized.")

	return logFile, nil
}
