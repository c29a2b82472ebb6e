package production

// primitiveTypeNames lists every WebIDL primitive type spelling, longest
// word-count first so a prefix word ("long", "unsigned") is not matched
// before its longer expansion ("long long", "unsigned long long") is tried.
var primitiveTypeNames = []string{
	"unsigned long long",
	"unsigned short",
	"unsigned long",
	"unrestricted float",
	"unrestricted double",
	"long long",
	"short",
	"long",
	"byte",
	"octet",
	"boolean",
	"float",
	"double",
}

var stringTypeNames = []string{
	"DOMString",
	"ByteString",
	"USVString",
}

var bufferTypeNames = []string{
	"ArrayBuffer",
	"DataView",
	"Int8Array",
	"Int16Array",
	"Int32Array",
	"Uint8Array",
	"Uint16Array",
	"Uint32Array",
	"Uint8ClampedArray",
	"Float32Array",
	"Float64Array",
}

// objectTypeNames are the parameterless, non-primitive type keywords: "any"
// (WebIDL's universal type) and "object" (WebIDL's object type). Neither
// takes arguments, so both are represented by the one ObjectType production.
var objectTypeNames = []string{"any", "object"}

var genericTypeKeywords = map[string]int{
	"sequence":    1,
	"FrozenArray": 1,
	"Promise":     1,
	"record":      2,
}
