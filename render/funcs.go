package render

import (
	"html/template"

	"github.com/foomo/resinaro/i18n"
	"github.com/foomo/resinaro/vo"
)

var funcs = template.FuncMap{
	// json-ld is marshalled with html escaping, it is safe as is
	"ld": func(doc []byte) template.JS {
		return template.JS(doc)
	},
	"rank": func(i int) int {
		return i + 1
	},
	"badge": func(copyBag i18n.CopyBag, b vo.Badge) string {
		return copyBag.BadgeLabel(b)
	},
}
