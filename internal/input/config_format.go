package input

// Keyspec is a key sequence as written in the configuration, e.g. "q" or
// "<c-c>".
type Keyspec string

// Actionspec names an action that keys can be bound to, e.g. "zoom-in".
type Actionspec string

// Bindings maps actions to the key sequences that trigger them.
type Bindings map[Actionspec]Keyspec
