// Package pattern parses Life patterns in the plaintext (.cells) and RLE
// (.rle) interchange formats, optionally gzip-compressed, and ships a few
// built-in patterns for demos and tests.
package pattern
