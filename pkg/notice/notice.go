package notice

import (
	"fmt"
	"html"
)

type Class string

const (
	ClassSuccess Class = "success"
	ClassInfo    Class = "info"
	ClassWarning Class = "warning"
	ClassError   Class = "error"
)

// Notice is a dismissible admin banner.
type Notice struct {
	Message string `json:"message"`
	Class   Class  `json:"class"`
}

func New(class Class, message string) Notice {
	return Notice{Message: message, Class: class}
}

func (c Class) Valid() bool {
	switch c {
	case ClassSuccess, ClassInfo, ClassWarning, ClassError:
		return true
	}
	return false
}

// Render returns the notice markup. Unknown classes render nothing.
func (n Notice) Render() string {
	if !n.Class.Valid() {
		return ""
	}
	return fmt.Sprintf(`<div class="notice notice-%s is-dismissible"><p><b>%s</b></p></div>`,
		n.Class, html.EscapeString(n.Message))
}
