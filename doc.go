// Package mathparse evaluates arithmetic written in symbols or in words.
//
// Expressions may mix numbers and operators like "(2 + 3) * 4" with the math
// words of a supported language, so "four plus four" in English and
// "二加二" in Chinese are both expressions. Number words combine the way
// they are spoken: "five thousand thirty" is 5030 and "fifty-four" is 54.
//
// Parsing runs in stages that are each exported for inspection. Normalize
// rewrites math words as symbols, Tokenize splits symbolic text into tokens,
// Disambiguate marks unary minus, ToPostfix orders tokens for evaluation,
// and Evaluate computes a Value. Parse and Parser.Parse do all of them.
//
// Results keep the narrowest exact kind available. Integer arithmetic stays
// integral until it overflows or divides, division gives exact decimals, and
// transcendental functions give floats. Division by zero gives Undefined,
// which then propagates through the rest of the expression.
//
// The vocabulary of each language lives in the vocab subpackage.
package mathparse
