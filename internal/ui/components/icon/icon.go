// Package icon holds the lucide outlines used by the navigation.
package icon

import "github.com/a-h/templ"

const defaultSize = 16

type Props struct {
	Size  int
	Class string
}

func resolve(props []Props) Props {
	p := Props{Size: defaultSize}
	if len(props) > 0 {
		p = props[0]
		if p.Size <= 0 {
			p.Size = defaultSize
		}
	}
	return p
}

func (p Props) attrs() templ.Attributes {
	if p.Class == "" {
		return templ.Attributes{}
	}
	return templ.Attributes{"class": p.Class}
}
