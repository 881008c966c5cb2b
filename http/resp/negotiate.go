package resp

import (
	"mime"
	"net/http"
	"strconv"
	"strings"
)

const (
	mimeJSON = "application/json"
	mimeHTML = "text/html"
)

// AcceptsJSON reports whether the request should be answered with JSON
// rather than rendered HTML.
//
// A request accepts JSON when it carries a JSON body (per its Content-Type)
// or when the best match for its Accept header between
// "application/json" and "text/html" is "application/json".
//
// Wildcards ("*/*", "application/*", "text/*") and q-values are honored.
// A request expressing no preference - no Accept header, or a bare "*/*" -
// is answered with HTML.
func AcceptsJSON(r *http.Request) bool {
	if hasJSONBody(r) {
		return true
	}

	jsonQ, jsonSpec := acceptQuality(r.Header, mimeJSON)
	htmlQ, htmlSpec := acceptQuality(r.Header, mimeHTML)

	if jsonQ > htmlQ {
		return true
	}

	// ties go to HTML unless JSON was named more specifically
	return jsonQ == htmlQ && jsonQ > 0 && jsonSpec > htmlSpec
}

// hasJSONBody checks whether the request's Content-Type declares JSON,
// including suffixed types such as "application/problem+json".
func hasJSONBody(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return false
	}

	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}

	return mt == mimeJSON || strings.HasSuffix(mt, "+json")
}

// acceptQuality finds the quality the Accept header assigns to the offered
// media type, and how specifically the match was made:
// 3 for an exact match, 2 for a subtype wildcard, 1 for a full wildcard.
func acceptQuality(header http.Header, offer string) (q float64, specificity int) {
	slash := strings.Index(offer, "/")
	offerType := offer[:slash]

	for _, line := range header.Values("Accept") {
		for _, item := range strings.Split(line, ",") {
			mt, params, err := mime.ParseMediaType(strings.TrimSpace(item))
			if err != nil {
				continue
			}

			var spec int
			switch mt {
			case offer:
				spec = 3
			case offerType + "/*":
				spec = 2
			case "*/*":
				spec = 1
			default:
				continue
			}

			itemQ := 1.0
			if raw, ok := params["q"]; ok {
				parsed, err := strconv.ParseFloat(raw, 64)
				if err == nil && parsed >= 0 && parsed <= 1 {
					itemQ = parsed
				}
			}

			// more specific entries override wildcard ones
			if spec > specificity || (spec == specificity && itemQ > q) {
				q, specificity = itemQ, spec
			}
		}
	}

	return q, specificity
}
