package markup

// voidTags never take a closing tag or inner content.
var voidTags = map[string]bool{
	"area":     true,
	"base":     true,
	"br":       true,
	"col":      true,
	"embed":    true,
	"hr":       true,
	"img":      true,
	"input":    true,
	"keygen":   true,
	"link":     true,
	"menuitem": true,
	"meta":     true,
	"param":    true,
	"source":   true,
	"track":    true,
	"wbr":      true,
}

// IsVoidTag reports whether tag is a void element.
func IsVoidTag(tag string) bool {
	return voidTags[tag]
}
