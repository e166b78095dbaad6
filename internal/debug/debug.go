package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	once sync.Once
	out  *os.File
)

// Log writes a formatted message to the debug file, if one is configured
// via GRIDBOX_DEBUG. Each message is prefixed with a timestamp and
// terminated with a newline.
func Log(format string, args ...any) {
	once.Do(open)
	if out == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

func open() {
	path := os.Getenv("GRIDBOX_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	out = f
}
