package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/signadot/tuple-format/go-tuple/tuple"
)

type colors struct {
	Num  func(string, ...any) string
	Str  func(string, ...any) string
	Bool func(string, ...any) string
	Null func(string, ...any) string
	Etc  func(string, ...any) string
	Sep  func(string, ...any) string
}

func newColors() *colors {
	return &colors{
		Num:  color.RGB(128, 216, 236).SprintfFunc(),
		Str:  color.RGB(128, 168, 196).SprintfFunc(),
		Bool: color.CyanString,
		Null: color.RGB(168, 0, 196).SprintfFunc(),
		Etc:  color.RGB(196, 168, 128).SprintfFunc(),
		Sep:  color.RGB(255, 0, 196).SprintfFunc(),
	}
}

func (c *colors) element(v any) string {
	switch v.(type) {
	case nil:
		return c.Null("%s", "null")
	case bool:
		return c.Bool("%v", v)
	case string:
		return c.Str("%v", v)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return c.Num("%v", v)
	default:
		return c.Etc("%v", v)
	}
}

// writeTuple renders t to w, colored when the main config says so,
// as json with -j, plainly otherwise.
func writeTuple(cfg *MainConfig, w io.Writer, t *tuple.Tuple) error {
	if cfg.J {
		d, err := json.Marshal(t)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return err
	}
	if !cfg.useColor(w) {
		_, err := fmt.Fprintln(w, t)
		return err
	}
	c := newColors()
	if _, err := io.WriteString(w, c.Sep("(")); err != nil {
		return err
	}
	first := true
	for v := range t.Values() {
		if !first {
			if _, err := io.WriteString(w, c.Sep(",")+" "); err != nil {
				return err
			}
		}
		first = false
		if _, err := io.WriteString(w, c.element(v)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, c.Sep(")")+"\n")
	return err
}
