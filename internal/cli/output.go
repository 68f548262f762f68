package cli

import (
	"fmt"
	"io"
	"os"
)

// Output управляет выводом CLI.
//
// Данные (сценарий или JSON) идут в stdout либо в файл,
// сообщения Success/Error — в stderr.
type Output struct {
	w    io.Writer // stdout для данных
	errW io.Writer // stderr для сообщений
}

// NewOutput создаёт Output поверх stdout/stderr.
func NewOutput() *Output {
	return &Output{
		w:    os.Stdout,
		errW: os.Stderr,
	}
}

// WriteScript выводит итоговый текст.
//
// Если path пустой — текст уходит в stdout как есть.
// Иначе текст записывается в файл, а подтверждение — в stderr.
func (o *Output) WriteScript(text, path string) error {
	if path == "" {
		fmt.Fprint(o.w, text)
		return nil
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	o.Success("Script written to: " + path)
	return nil
}

// Success выводит сообщение об успехе в stderr.
func (o *Output) Success(msg string) {
	fmt.Fprintln(o.errW, msg)
}

// Error выводит сообщение об ошибке в stderr.
func (o *Output) Error(msg string) {
	fmt.Fprintln(o.errW, "Error: "+msg)
}
