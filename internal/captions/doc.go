// Package captions retrieves and parses timed-text caption tracks.
//
// The client wraps the YouTube Data API captions listing plus the payload
// download, selecting the first English track for a video. Payloads arrive in
// a loosely standardized WebVTT-like format; the parser tolerates header and
// comment blocks, strips embedded markup tags, and treats a payload with zero
// usable cues as a parse failure rather than an empty success.
package captions
