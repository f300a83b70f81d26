package citefile

import "strings"

// License is a disjunction of SPDX license identifiers: the work is available
// under any one of them. A nil License means none was given.
type License []string

// String renders the SPDX expression, e.g. "Apache-2.0 OR MIT".
func (l License) String() string { return strings.Join(l, " OR ") }

// IsZero reports whether no license was given.
func (l License) IsZero() bool { return len(l) == 0 }

// Allows reports whether id (matched case-insensitively, deprecated ids
// included) is one of the alternatives.
func (l License) Allows(id string) bool {
	canon, ok := licenseSet.Match(id)
	if !ok {
		return false
	}
	for _, x := range l {
		if x == canon {
			return true
		}
	}
	return false
}

// spdxIDs is the closed set of SPDX license identifiers accepted in license
// fields. Deprecated identifiers are registered as aliases in spdxDeprecated.
var spdxIDs = []string{
	"0BSD", "AAL", "AFL-1.1", "AFL-1.2", "AFL-2.0", "AFL-2.1", "AFL-3.0",
	"AGPL-1.0-only", "AGPL-1.0-or-later", "AGPL-3.0-only", "AGPL-3.0-or-later",
	"APSL-1.0", "APSL-1.1", "APSL-1.2", "APSL-2.0", "Apache-1.0", "Apache-1.1",
	"Apache-2.0", "Artistic-1.0", "Artistic-1.0-Perl", "Artistic-1.0-cl8",
	"Artistic-2.0", "BSD-1-Clause", "BSD-2-Clause", "BSD-2-Clause-Patent",
	"BSD-3-Clause", "BSD-3-Clause-Clear", "BSD-3-Clause-LBNL",
	"BSD-3-Clause-No-Nuclear-License", "BSD-4-Clause", "BSD-Protection",
	"BSL-1.0", "BUSL-1.1", "BlueOak-1.0.0", "CAL-1.0", "CATOSL-1.1",
	"CC-BY-1.0", "CC-BY-2.0", "CC-BY-2.5", "CC-BY-3.0", "CC-BY-4.0",
	"CC-BY-NC-1.0", "CC-BY-NC-2.0", "CC-BY-NC-2.5", "CC-BY-NC-3.0", "CC-BY-NC-4.0",
	"CC-BY-NC-ND-1.0", "CC-BY-NC-ND-2.0", "CC-BY-NC-ND-2.5", "CC-BY-NC-ND-3.0", "CC-BY-NC-ND-4.0",
	"CC-BY-NC-SA-1.0", "CC-BY-NC-SA-2.0", "CC-BY-NC-SA-2.5", "CC-BY-NC-SA-3.0", "CC-BY-NC-SA-4.0",
	"CC-BY-ND-1.0", "CC-BY-ND-2.0", "CC-BY-ND-2.5", "CC-BY-ND-3.0", "CC-BY-ND-4.0",
	"CC-BY-SA-1.0", "CC-BY-SA-2.0", "CC-BY-SA-2.5", "CC-BY-SA-3.0", "CC-BY-SA-4.0",
	"CC-PDDC", "CC0-1.0", "CDDL-1.0", "CDDL-1.1", "CDLA-Permissive-1.0",
	"CDLA-Permissive-2.0", "CDLA-Sharing-1.0", "CECILL-1.0", "CECILL-1.1",
	"CECILL-2.0", "CECILL-2.1", "CECILL-B", "CECILL-C", "CERN-OHL-1.1",
	"CERN-OHL-1.2", "CERN-OHL-P-2.0", "CERN-OHL-S-2.0", "CERN-OHL-W-2.0",
	"CNRI-Python", "CPAL-1.0", "CPL-1.0", "CUA-OPL-1.0", "ECL-1.0", "ECL-2.0",
	"EFL-1.0", "EFL-2.0", "EPL-1.0", "EPL-2.0", "EUDatagrid", "EUPL-1.0",
	"EUPL-1.1", "EUPL-1.2", "Entessa", "FSFAP", "FTL", "Fair", "Frameworx-1.0",
	"GFDL-1.1-only", "GFDL-1.1-or-later", "GFDL-1.2-only", "GFDL-1.2-or-later",
	"GFDL-1.3-only", "GFDL-1.3-or-later", "GPL-1.0-only", "GPL-1.0-or-later",
	"GPL-2.0-only", "GPL-2.0-or-later", "GPL-3.0-only", "GPL-3.0-or-later",
	"HPND", "IPA", "IPL-1.0", "ISC", "Intel", "LGPL-2.0-only", "LGPL-2.0-or-later",
	"LGPL-2.1-only", "LGPL-2.1-or-later", "LGPL-3.0-only", "LGPL-3.0-or-later",
	"LGPLLR", "LPL-1.0", "LPL-1.02", "LPPL-1.3c", "LiLiQ-P-1.1", "LiLiQ-R-1.1",
	"LiLiQ-Rplus-1.1", "MIT", "MIT-0", "MIT-CMU", "MIT-Modern-Variant",
	"MPL-1.0", "MPL-1.1", "MPL-2.0", "MPL-2.0-no-copyleft-exception", "MS-PL",
	"MS-RL", "MirOS", "Motosoto", "MulanPSL-1.0", "MulanPSL-2.0", "Multics",
	"NASA-1.3", "NCSA", "NGPL", "NPOSL-3.0", "NTP", "Naumen", "Nokia",
	"ODC-By-1.0", "ODbL-1.0", "OFL-1.0", "OFL-1.1", "OGL-UK-3.0", "OGTSL",
	"OLDAP-2.8", "OPL-1.0", "OSET-PL-2.1", "OSL-1.0", "OSL-2.0", "OSL-2.1",
	"OSL-3.0", "OpenSSL", "PDDL-1.0", "PHP-3.0", "PHP-3.01", "PostgreSQL",
	"PSF-2.0", "Python-2.0", "QPL-1.0", "RPL-1.1", "RPL-1.5", "RPSL-1.0",
	"RSCPL", "Ruby", "SISSL", "SPL-1.0", "SSPL-1.0", "SimPL-2.0", "Sleepycat",
	"UCL-1.0", "UPL-1.0", "Unicode-DFS-2015", "Unicode-DFS-2016", "Unlicense",
	"VSL-1.0", "W3C", "WTFPL", "Watcom-1.0", "X11", "Xnet", "YPL-1.1", "ZPL-2.0",
	"ZPL-2.1", "Zlib", "bzip2-1.0.6", "curl", "libpng-2.0", "zlib-acknowledgement",
}

// spdxDeprecated maps deprecated SPDX identifiers to their replacement.
var spdxDeprecated = map[string][]string{
	"AGPL-1.0-only":     {"AGPL-1.0"},
	"AGPL-3.0-only":     {"AGPL-3.0"},
	"GFDL-1.1-only":     {"GFDL-1.1"},
	"GFDL-1.2-only":     {"GFDL-1.2"},
	"GFDL-1.3-only":     {"GFDL-1.3"},
	"GPL-1.0-only":      {"GPL-1.0"},
	"GPL-1.0-or-later":  {"GPL-1.0+"},
	"GPL-2.0-only":      {"GPL-2.0"},
	"GPL-2.0-or-later":  {"GPL-2.0+"},
	"GPL-3.0-only":      {"GPL-3.0"},
	"GPL-3.0-or-later":  {"GPL-3.0+"},
	"LGPL-2.0-only":     {"LGPL-2.0"},
	"LGPL-2.0-or-later": {"LGPL-2.0+"},
	"LGPL-2.1-only":     {"LGPL-2.1"},
	"LGPL-2.1-or-later": {"LGPL-2.1+"},
	"LGPL-3.0-only":     {"LGPL-3.0"},
	"LGPL-3.0-or-later": {"LGPL-3.0+"},
}

var licenseSet = func() *EnumSet[string] {
	vs := make([]EnumVariant[string], len(spdxIDs))
	for i, id := range spdxIDs {
		vs[i] = EnumVariant[string]{Value: id, Label: id, Aliases: spdxDeprecated[id]}
	}
	return NewEnumSet(vs...)
}()

// LookupLicense returns the current SPDX identifier for id, resolving case
// differences and deprecated identifiers.
func LookupLicense(id string) (string, bool) { return licenseSet.Match(id) }
