package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("MSON_DEBUG_TOKENS")
	d.Parse = boolEnv("MSON_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte("\n"))
}
