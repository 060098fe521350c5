package audit

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/example/osshealth/internal/finding"
)

func contains(entries []string, want string) bool {
	for _, e := range entries {
		if e == want {
			return true
		}
	}
	return false
}

func (a *Auditor) requireEntry(out *finding.List, sev finding.Severity, entries []string, want, msg string) {
	ok := contains(entries, want)
	a.log.WithFields(logrus.Fields{"check": "path-contains", "entry": want, "ok": ok}).Debug("checked")
	if !ok {
		out.Add(sev, msg)
	}
}

func (a *Auditor) forbidEntry(out *finding.List, sev finding.Severity, entries []string, unwanted, msg string) {
	found := contains(entries, unwanted)
	a.log.WithFields(logrus.Fields{"check": "path-not-contains", "entry": unwanted, "found": found}).Debug("checked")
	if found {
		out.Add(sev, msg)
	}
}

func (a *Auditor) requireFile(out *finding.List, sev finding.Severity, hostPath, msg string) {
	ok := pathExists(a.Layout.Host(hostPath))
	a.log.WithFields(logrus.Fields{"check": "exists", "path": hostPath, "ok": ok}).Debug("checked")
	if !ok {
		out.Add(sev, msg)
	}
}

func (a *Auditor) forbidFile(out *finding.List, sev finding.Severity, hostPath, msg string) {
	found := pathExists(a.Layout.Host(hostPath))
	a.log.WithFields(logrus.Fields{"check": "not-exists", "path": hostPath, "found": found}).Debug("checked")
	if found {
		out.Add(sev, msg)
	}
}

// resolve returns the canonical location of name on the audited PATH ("" if absent).
func (a *Auditor) resolve(name string) string {
	resolved := ResolveBinary(a.Env.Path, name)
	a.log.WithFields(logrus.Fields{"check": "resolve", "name": name, "resolved": resolved}).Debug("resolved command")
	return resolved
}

// requireBinaryAt appends when name does not resolve to exactly hostPath.
func (a *Auditor) requireBinaryAt(out *finding.List, sev finding.Severity, name, hostPath, msg string) {
	if a.resolve(name) != a.Layout.Host(hostPath) {
		out.Add(sev, msg)
	}
}

// forbidBinaryUnder appends when the resolved location of name contains fragment.
func (a *Auditor) forbidBinaryUnder(out *finding.List, sev finding.Severity, name, fragment, msg string) {
	if strings.Contains(a.resolve(name), a.Layout.Host(fragment)) {
		out.Add(sev, msg)
	}
}

func (a *Auditor) requireSuccess(ctx context.Context, out *finding.List, sev finding.Severity, argv []string, msg string) {
	res := a.Runner.Run(ctx, argv)
	a.log.WithFields(logrus.Fields{"check": "command", "argv": argv, "exit_code": res.ExitCode}).Debug("checked")
	if !res.Succeeded() {
		out.Add(sev, msg)
	}
}

func (a *Auditor) requirePackage(ctx context.Context, out *finding.List, sev finding.Severity, pkg, msg string) {
	yum := a.Layout.Host(a.Layout.PackageTool("yum"))
	a.requireSuccess(ctx, out, sev, []string{yum, "list", "installed", pkg}, msg)
}
