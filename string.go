package xlist

import (
	"fmt"
	"io"

	"github.com/Brian-M-J/xlist/internal/xstring"
)

// WriteTo renders the list as a bracketed, comma-separated sequence into w,
// formatting each element with %v. It implements io.WriterTo.
func (l *List[T]) WriteTo(w io.Writer) (total int64, err error) {
	write := func(s string) bool {
		var n int
		n, err = io.WriteString(w, s)
		total += int64(n)

		return err == nil
	}
	if !write("[") {
		return total, err
	}
	for n := l.head; n != nil; n = n.next {
		if n != l.head && !write(", ") {
			return total, err
		}
		if !write(fmt.Sprintf("%v", n.value)) {
			return total, err
		}
	}
	write("]")

	return total, err
}

func (l *List[T]) String() string {
	buffer := xstring.Buffer()
	defer buffer.Free()
	_, _ = l.WriteTo(buffer)

	return buffer.String()
}
