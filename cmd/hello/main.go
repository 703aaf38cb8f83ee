// Command hello prints "hello world!" from a single system and exits.
package main

import (
	"log"
	"os"

	"github.com/plus3/ecsdemos/engine"
	"github.com/plus3/ecsdemos/internal/demo/hello"
)

func main() {
	app := engine.NewApp().AddPlugins(hello.Plugin{Out: os.Stdout})
	if err := app.Run(engine.RunOnce{}); err != nil {
		log.Fatal(err)
	}
}
