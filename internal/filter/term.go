package filter

import (
	"net/netip"
	"strings"
)

// TermKind classifies a parsed filter term.
type TermKind int

const (
	// TermLiteral keeps entries whose services or region match the keyword.
	TermLiteral TermKind = iota
	// TermExclude drops entries whose services or region match the keyword.
	TermExclude
	// TermExclusiveInclude keeps entries whose only service is the keyword,
	// or whose region matches it.
	TermExclusiveInclude
	// TermAddressMatch keeps entries whose network overlaps the given
	// address or CIDR block.
	TermAddressMatch
)

// Term is one parsed command-line filter argument.
type Term struct {
	Kind    TermKind
	Keyword string
	Network netip.Prefix
}

// ParseTerm classifies a single filter argument. An argument that parses as
// an IP address or CIDR block becomes an address-match term; this is tried
// before keyword interpretation. Otherwise a leading "-" excludes, "=" is an
// exclusive include and "+" (or no prefix) is a plain include.
func ParseTerm(arg string) Term {
	if prefix, err := netip.ParsePrefix(arg); err == nil {
		return Term{Kind: TermAddressMatch, Network: prefix.Masked()}
	}
	if addr, err := netip.ParseAddr(arg); err == nil {
		return Term{Kind: TermAddressMatch, Network: netip.PrefixFrom(addr, addr.BitLen())}
	}

	switch {
	case strings.HasPrefix(arg, "-"):
		return Term{Kind: TermExclude, Keyword: arg[1:]}
	case strings.HasPrefix(arg, "="):
		return Term{Kind: TermExclusiveInclude, Keyword: arg[1:]}
	case strings.HasPrefix(arg, "+"):
		return Term{Kind: TermLiteral, Keyword: arg[1:]}
	default:
		return Term{Kind: TermLiteral, Keyword: arg}
	}
}

// ParseTerms parses all filter arguments in order, splitting them into
// keyword terms and address-match networks. Address terms keep their
// command-line order but are always applied after every keyword term.
func ParseTerms(args []string) (keywords []Term, addresses []netip.Prefix) {
	for _, arg := range args {
		term := ParseTerm(arg)
		if term.Kind == TermAddressMatch {
			addresses = append(addresses, term.Network)
		} else {
			keywords = append(keywords, term)
		}
	}
	return keywords, addresses
}
