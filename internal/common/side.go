package common

type Side int

const (
	Buy Side = iota
	Sell
)

var sideName = map[Side]string{
	Buy:  "buy",
	Sell: "sell",
}

// Verb forms used by the order narration.
var sideVerb = map[Side]string{
	Buy:  "buying",
	Sell: "selling",
}

func (s Side) Valid() bool {
	_, ok := sideName[s]
	return ok
}

func (s Side) String() string {
	return sideName[s]
}

func (s Side) Verb() string {
	return sideVerb[s]
}
