/*
Package dimex is about extracting typed values ("dimensions") from natural
language text.

Description

Texts are full of quantities: "four hundred and twenty", "1,234.5", "the
third", "خمسة و عشرون". Recognizing them is not a matter of a single regular
expression, as numbers are composed from smaller parts, and the rules for
composing them differ between languages. Package dimex therefore does not
hard-wire any grammar. Instead, every locale supplies a table of small rules,
and a generic engine combines them.

A rule is a short sequence of pattern items together with a production
function. Items either match raw text (regular expressions) or tokens which
have been produced by earlier rule applications. An example is the Arabic
rule for numbers of the form "unit and tens":

   Numeral(1…9)  'و'  Numeral(20, 30, …, 90)

Matching it will bind three items in sequence. The production then computes
5 + 20 for "خمسة و عشرون" and returns a new Numeral token, which in turn may
take part in further rule applications ("مائة و خمسة و عشرون").

The engine (see sub-package engine) applies all rules of a rule set
repeatedly until no new tokens appear, i.e. until a fixpoint is reached.
Competing tokens for overlapping parts of the input are resolved afterwards:
longer spans win over shorter ones, earlier rules over later ones.

Contents

Base package dimex provides the vocabulary shared by all the sub-packages:
dimension kinds, tokens, their payloads, pattern items, rules and rule sets.
Rule sets are validated when they are constructed; a malformed table is
reported before any text is parsed.

Sub-packages numeral and ordinal provide helpers to write rule tables for
the respective dimensions. Rule tables for specific locales live in
sub-packages of locale. Package tables collects them into a registry, and
package engine performs the matching.

Ranges

Token ranges are byte offsets into the input string, as is customary for Go
strings. Clients needing character positions may convert them with
utf8.RuneCountInString on the prefix.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package dimex

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// We define constants for token priorities. Rules get a priority equal to
// their position in the active rule list, i.e. lower values are better.
const (
	HighestPriority = 0
	LowestPriority  = 1 << 30
)
