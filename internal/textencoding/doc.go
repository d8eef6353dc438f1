/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package textencoding is used for handling text encoding (char code <-> glyph mapping) in unidoc
// both for reading and outputing PDF contents.
package textencoding
