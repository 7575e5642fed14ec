// Package markup builds HTML element trees without mutation.
//
// An Element holds a tag, an ordered attribute set and a list of children,
// each of which is another Element or a string. Mutators such as Attribute,
// AddClass, AddChild and Text return a fresh Element and never change the
// receiver:
//
//	link, _ := markup.A().Attribute("href", "/home").Text("Home")
//	link.String() // <a href="/home">Home</a>
//
// Strings added as children are written verbatim; Text escapes its input
// before storing it. Void elements such as img and input render without a
// closing tag and refuse inner html.
package markup
