package cli

import (
	"bytes"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	prompt "github.com/c-bata/go-prompt"
	"github.com/mattn/go-isatty"
)

// MainLoop runs exec per input line: interactive go-prompt on a tty,
// line-by-line stdin otherwise (piped scripts).
func MainLoop(exec func(line string), complete func(d prompt.Document) []prompt.Suggest) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func() {
		for range signalCh {
			os.Exit(1)
		}
	}()

	if isatty.IsTerminal(os.Stdin.Fd()) {
		prompt.New(exec, complete).Run()
		return
	}
	stdinAll, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	for _, lineb := range bytes.Split(stdinAll, []byte{'\n'}) {
		exec(string(bytes.TrimSpace(lineb)))
	}
}
