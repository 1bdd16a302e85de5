/* Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved. */

// Package bits decodes BITS transmissions: hexadecimal text that unpacks into a
// bitstream of nested, variable-length packets.
//
// Every packet starts with a 3-bit version and a 3-bit type. Type 4 is a
// literal, whose value is a run of 5-bit groups (a continuation bit followed
// by a 4-bit nibble, most significant nibble first). Every other type is an
// operator whose sub-packets are bounded either by a 15-bit total length in
// bits or by an 11-bit packet count, selected by a single length-mode bit.
//
//	p, err := bits.Decode("9C0141080250320F1802104A08")
//	if err != nil {
//		return err
//	}
//	fmt.Println(bits.VersionSum(p), bits.Value(p))
//
// Decoding is all-or-nothing: any malformed input yields one of the error types
// in this package (possibly annotated, see errors.Cause) and no partial tree.
// Decoded packets are never modified, so they may be evaluated concurrently.
package bits
