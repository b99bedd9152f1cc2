/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

// config collects Encode's optional parameters.
type config struct {
	quietZone    int
	forceVersion Version // UnknownVersion (0) means "choose automatically".
	eci          int     // -1 means "no ECI header".
}

func newConfig() *config {
	return &config{quietZone: 4, forceVersion: UnknownVersion, eci: -1}
}

// Option configures a call to Encode.
type Option func(*config)

// WithQuietZone sets the quiet-zone module width recorded on the resulting
// Matrix (default 4). It does not affect the module grid itself.
func WithQuietZone(modules int) Option {
	return func(c *config) { c.quietZone = modules }
}

// WithVersion forces a specific QR version instead of choosing the
// smallest one that fits. Encode returns CapacityExceeded if the content
// does not fit the forced version and ECC level.
func WithVersion(version Version) Option {
	return func(c *config) { c.forceVersion = version }
}

// WithECI prefixes the data stream with an ECI header for the given
// designator. Designator 26 (UTF-8) also switches byte-mode content
// interpretation from the Latin-1 default to UTF-8.
func WithECI(designator int) Option {
	return func(c *config) { c.eci = designator }
}
