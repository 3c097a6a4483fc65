package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// namedKeys are the keys that are written as "<identifier>" in a keyspec.
var namedKeys = []struct {
	identifier string
	key        Key
}{
	{"space", Key{Key: tcell.KeyRune, Ch: ' '}},
	{"cr", Key{Key: tcell.KeyEnter}},
	{"esc", Key{Key: tcell.KeyESC}},
	{"tab", Key{Key: tcell.KeyTab}},
	{"del", Key{Key: tcell.KeyDelete}},
	{"bs", Key{Key: tcell.KeyBackspace2}},
	{"left", Key{Key: tcell.KeyLeft}},
	{"right", Key{Key: tcell.KeyRight}},
	{"up", Key{Key: tcell.KeyUp}},
	{"down", Key{Key: tcell.KeyDown}},
	{"home", Key{Key: tcell.KeyHome}},
	{"end", Key{Key: tcell.KeyEnd}},
	{"pgup", Key{Key: tcell.KeyPgUp}},
	{"pgdn", Key{Key: tcell.KeyPgDn}},
	{"lt", Key{Key: tcell.KeyRune, Ch: '<'}},
	{"gt", Key{Key: tcell.KeyRune, Ch: '>'}},

	{"c-space", Key{Key: tcell.KeyCtrlSpace}},
	{"c-bs", Key{Key: tcell.KeyBackspace}},
}

var (
	identifierToKey map[string]Key
	keyToIdentifier map[Key]string
)

func init() {
	identifierToKey = make(map[string]Key)
	keyToIdentifier = make(map[Key]string)
	for _, k := range namedKeys {
		identifierToKey[k.identifier] = k.key
		keyToIdentifier[k.key] = k.identifier
	}
	for i := 0; i < 26; i++ {
		identifier := fmt.Sprintf("c-%c", 'a'+i)
		key := Key{Key: tcell.KeyCtrlA + tcell.Key(i)}
		identifierToKey[identifier] = key
		if _, taken := keyToIdentifier[key]; !taken {
			keyToIdentifier[key] = identifier
		}
	}
}

// ConfigKeyspecToKeys converts a key sequence specification string (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// corresponding sequence of Keys.
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	result := make([]Key, 0)

	var special []rune
	inSpecial := false
	for pos, r := range []rune(spec) {
		switch {

		case r == '<':
			if inSpecial {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			inSpecial = true
			special = special[:0]

		case r == '>':
			if !inSpecial {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			inSpecial = false
			key, err := KeyIdentifierToKey(string(special))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '<%s>' to key (%w)", string(special), err)
			}
			result = append(result, key)

		case inSpecial:
			if !unicode.IsLetter(r) && r != '-' {
				return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
			}
			special = append(special, r)

		default:
			result = append(result, Key{Key: tcell.KeyRune, Ch: r})

		}
	}
	if inSpecial {
		return nil, fmt.Errorf("special context not closed at end of '%s'", spec)
	}

	return result, nil
}

// KeyIdentifierToKey converts the given special identifier (the part between
// '<' and '>' in a keyspec, e.g. "c-a") to its key.
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := identifierToKey[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to the form it would have
// in a keyspec.
func ToConfigIdentifierString(k Key) string {
	if identifier, ok := keyToIdentifier[k]; ok {
		return "<" + identifier + ">"
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	return fmt.Sprintf("<%s>", strings.ToLower(tcell.KeyNames[k.Key]))
}
