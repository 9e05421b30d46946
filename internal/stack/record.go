package stack

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/Brian-M-J/xlist/internal/xstring"
)

type recordOptions struct {
	packageName  bool
	functionName bool
	fileName     bool
	line         bool
}

type recordOption func(opts *recordOptions)

func PackageName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.packageName = b
	}
}

func FunctionName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.functionName = b
	}
}

func FileName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.fileName = b
	}
}

func Line(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.line = b
	}
}

type call struct {
	function uintptr
	file     string
	line     int
}

func Call(depth int) (c call) {
	c.function, c.file, c.line, _ = runtime.Caller(depth + 1)

	return c
}

func (c call) Record(opts ...recordOption) string {
	optionsHolder := recordOptions{
		packageName:  true,
		functionName: true,
		fileName:     true,
		line:         true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&optionsHolder)
		}
	}
	pkgName, funcName := splitFunctionName(runtime.FuncForPC(c.function).Name())

	buffer := xstring.Buffer()
	defer buffer.Free()
	if optionsHolder.packageName {
		buffer.WriteString(pkgName)
	}
	if optionsHolder.functionName {
		if buffer.Len() > 0 {
			buffer.WriteByte('.')
		}
		buffer.WriteString(funcName)
	}
	if optionsHolder.fileName {
		var closeBrace bool
		if buffer.Len() > 0 {
			buffer.WriteByte('(')
			closeBrace = true
		}
		buffer.WriteString(baseName(c.file))
		if optionsHolder.line {
			buffer.WriteByte(':')
			buffer.WriteString(strconv.Itoa(c.line))
		}
		if closeBrace {
			buffer.WriteByte(')')
		}
	}

	return buffer.String()
}

// splitFunctionName splits a runtime function name of the form
// "path/to/pkg.Type.Func" into its package and qualified function parts.
func splitFunctionName(name string) (pkgName, funcName string) {
	name = strings.ReplaceAll(name, "[...]", "")
	if i := strings.LastIndex(name, "/"); i > -1 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i > -1 {
		return name[:i], name[i+1:]
	}

	return name, ""
}

func baseName(file string) string {
	if i := strings.LastIndex(file, "/"); i > -1 {
		return file[i+1:]
	}

	return file
}

func Record(depth int, opts ...recordOption) string {
	return Call(depth + 1).Record(opts...)
}
