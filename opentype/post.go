package opentype

// macRomanNames holds the 258 standard glyph names shared by post table
// versions 1.0 and 2.0.
var macRomanNames = [258]string{
	".notdef", ".null", "nonmarkingreturn", "space", "exclam",
	"quotedbl", "numbersign", "dollar", "percent", "ampersand",
	"quotesingle", "parenleft", "parenright", "asterisk", "plus",
	"comma", "hyphen", "period", "slash", "zero",
	"one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "colon",
	"semicolon", "less", "equal", "greater", "question",
	"at", "A", "B", "C", "D",
	"E", "F", "G", "H", "I",
	"J", "K", "L", "M", "N",
	"O", "P", "Q", "R", "S",
	"T", "U", "V", "W", "X",
	"Y", "Z", "bracketleft", "backslash", "bracketright",
	"asciicircum", "underscore", "grave", "a", "b",
	"c", "d", "e", "f", "g",
	"h", "i", "j", "k", "l",
	"m", "n", "o", "p", "q",
	"r", "s", "t", "u", "v",
	"w", "x", "y", "z", "braceleft",
	"bar", "braceright", "asciitilde", "Adieresis", "Aring",
	"Ccedilla", "Eacute", "Ntilde", "Odieresis", "Udieresis",
	"aacute", "agrave", "acircumflex", "adieresis", "atilde",
	"aring", "ccedilla", "eacute", "egrave", "ecircumflex",
	"edieresis", "iacute", "igrave", "icircumflex", "idieresis",
	"ntilde", "oacute", "ograve", "ocircumflex", "odieresis",
	"otilde", "uacute", "ugrave", "ucircumflex", "udieresis",
	"dagger", "degree", "cent", "sterling", "section",
	"bullet", "paragraph", "germandbls", "registered", "copyright",
	"trademark", "acute", "dieresis", "notequal", "AE",
	"Oslash", "infinity", "plusminus", "lessequal", "greaterequal",
	"yen", "mu", "partialdiff", "summation", "product",
	"pi", "integral", "ordfeminine", "ordmasculine", "Omega",
	"ae", "oslash", "questiondown", "exclamdown", "logicalnot",
	"radical", "florin", "approxequal", "Delta", "guillemotleft",
	"guillemotright", "ellipsis", "nonbreakingspace", "Agrave", "Atilde",
	"Otilde", "OE", "oe", "endash", "emdash",
	"quotedblleft", "quotedblright", "quoteleft", "quoteright", "divide",
	"lozenge", "ydieresis", "Ydieresis", "fraction", "currency",
	"guilsinglleft", "guilsinglright", "fi", "fl", "daggerdbl",
	"periodcentered", "quotesinglbase", "quotedblbase", "perthousand", "Acircumflex",
	"Ecircumflex", "Aacute", "Edieresis", "Egrave", "Iacute",
	"Icircumflex", "Idieresis", "Igrave", "Oacute", "Ocircumflex",
	"apple", "Ograve", "Uacute", "Ucircumflex", "Ugrave",
	"dotlessi", "circumflex", "tilde", "macron", "breve",
	"dotaccent", "ring", "cedilla", "hungarumlaut", "ogonek",
	"caron", "Lslash", "lslash", "Scaron", "scaron",
	"Zcaron", "zcaron", "brokenbar", "Eth", "eth",
	"Yacute", "yacute", "Thorn", "thorn", "minus",
	"multiply", "onesuperior", "twosuperior", "threesuperior", "onehalf",
	"onequarter", "threequarters", "franc", "Gbreve", "gbreve",
	"Idotaccent", "Scedilla", "scedilla", "Cacute", "cacute",
	"Ccaron", "ccaron", "dcroat",
}

const (
	postVersion1 = 0x00010000
	postVersion2 = 0x00020000
)

// parsePostNames extracts per-glyph names from a raw post table.
// Version 1.0 yields the standard 258 MacRoman names, version 2.0
// resolves each glyph through its name index and Pascal-string pool.
// Versions without names (2.5, 3.0) yield (nil, nil).
func parsePostNames(post []byte) ([]string, error) {
	if len(post) < 32 {
		return nil, errInvalidTable
	}
	switch be.Uint32(post[0:]) {
	case postVersion1:
		names := make([]string, len(macRomanNames))
		copy(names, macRomanNames[:])
		return names, nil
	case postVersion2:
		return parsePostNamesV2(post)
	default:
		return nil, nil
	}
}

func parsePostNamesV2(post []byte) ([]string, error) {
	if len(post) < 34 {
		return nil, errInvalidTable
	}
	numGlyphs := int(be.Uint16(post[32:]))
	indexEnd := 34 + numGlyphs*2
	if indexEnd > len(post) {
		return nil, errInvalidTable
	}

	// Walk the Pascal-string pool once; position in the pool is the
	// custom name index minus 258.
	var custom []string
	for off := indexEnd; off < len(post); {
		n := int(post[off])
		off++
		if off+n > len(post) {
			return nil, errInvalidTable
		}
		custom = append(custom, string(post[off:off+n]))
		off += n
	}

	names := make([]string, numGlyphs)
	for i := 0; i < numGlyphs; i++ {
		idx := int(be.Uint16(post[34+i*2:]))
		switch {
		case idx < len(macRomanNames):
			names[i] = macRomanNames[idx]
		case idx-len(macRomanNames) < len(custom):
			names[i] = custom[idx-len(macRomanNames)]
		}
	}
	return names, nil
}
