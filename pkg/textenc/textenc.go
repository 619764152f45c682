package textenc

import (
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Detection confidence below this falls back to lossy UTF-8.
// chardet reports confidence as an integer percentage.
const minConfidence = 70

// Info describes how a byte sequence was decoded.
type Info struct {
	Charset    string
	Confidence int
	// Degraded is true when detection was inconclusive and the bytes were
	// decoded as UTF-8 with replacement characters.
	Degraded bool
}

// Decode converts raw command output of unknown encoding into text.
// Windows console tools emit locale-dependent code pages, so the encoding
// is detected per invocation instead of assumed. Decode never fails: when
// detection is inconclusive the bytes are decoded as UTF-8 and malformed
// sequences become U+FFFD.
func Decode(data []byte) string {
	text, _ := DecodeWithInfo(data)
	return text
}

// DecodeWithInfo decodes like Decode and also reports the detected charset
// and confidence so callers can log decode degradation.
func DecodeWithInfo(data []byte) (string, Info) {
	if len(data) == 0 {
		return "", Info{}
	}

	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil || result.Charset == "" || result.Confidence <= minConfidence {
		return lossyUTF8(data), degradedInfo(result)
	}

	enc, err := htmlindex.Get(result.Charset)
	if err != nil {
		// Charset name not resolvable to a decoder (rare, e.g. exotic
		// IANA aliases). Same fallback as low confidence.
		return lossyUTF8(data), degradedInfo(result)
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return lossyUTF8(data), degradedInfo(result)
	}
	return string(decoded), Info{Charset: result.Charset, Confidence: result.Confidence}
}

// lossyUTF8 decodes as UTF-8, replacing malformed sequences with U+FFFD.
func lossyUTF8(data []byte) string {
	decoded, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), data)
	if err != nil {
		// The UTF-8 decoder replaces rather than errors; this path is a
		// final guard so the function stays total.
		return strings.ToValidUTF8(string(data), "�")
	}
	return string(decoded)
}

func degradedInfo(result *chardet.Result) Info {
	info := Info{Degraded: true}
	if result != nil {
		info.Charset = result.Charset
		info.Confidence = result.Confidence
	}
	return info
}
