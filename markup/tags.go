package markup

func A() Element        { return MustNew("a") }
func Div() Element      { return MustNew("div") }
func Span() Element     { return MustNew("span") }
func P() Element        { return MustNew("p") }
func Ul() Element       { return MustNew("ul") }
func Ol() Element       { return MustNew("ol") }
func Li() Element       { return MustNew("li") }
func H1() Element       { return MustNew("h1") }
func H2() Element       { return MustNew("h2") }
func H3() Element       { return MustNew("h3") }
func Section() Element  { return MustNew("section") }
func Nav() Element      { return MustNew("nav") }
func Header() Element   { return MustNew("header") }
func Footer() Element   { return MustNew("footer") }
func Main() Element     { return MustNew("main") }
func Form() Element     { return MustNew("form") }
func Label() Element    { return MustNew("label") }
func Button() Element   { return MustNew("button") }
func Select() Element   { return MustNew("select") }
func Option() Element   { return MustNew("option") }
func Textarea() Element { return MustNew("textarea") }
func Table() Element    { return MustNew("table") }
func Tr() Element       { return MustNew("tr") }
func Td() Element       { return MustNew("td") }
func Th() Element       { return MustNew("th") }

// Void elements.

func Img() Element   { return MustNew("img") }
func Input() Element { return MustNew("input") }
func Br() Element    { return MustNew("br") }
func Hr() Element    { return MustNew("hr") }
func Meta() Element  { return MustNew("meta") }
func Link() Element  { return MustNew("link") }
