// Package audit inspects a PASE shell environment for legacy tools shadowing the
// open-source package tree.
package audit

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/example/osshealth/internal/finding"
	"github.com/example/osshealth/internal/hostexec"
	"github.com/example/osshealth/internal/layout"
)

// Environment is the slice of process state the audit reads.
type Environment struct {
	Path  []string
	Shell string
}

// EnvironmentFromOS snapshots PATH and SHELL from the current process.
func EnvironmentFromOS() Environment {
	return Environment{
		Path:  filepath.SplitList(os.Getenv("PATH")),
		Shell: os.Getenv("SHELL"),
	}
}

// Auditor runs the fixed check sequence.
type Auditor struct {
	Layout layout.Layout
	Env    Environment
	Runner hostexec.Runner

	log logrus.FieldLogger
}

// New builds an Auditor. A nil logger falls back to the logrus standard logger.
func New(l layout.Layout, env Environment, runner hostexec.Runner, log logrus.FieldLogger) *Auditor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Auditor{Layout: l, Env: env, Runner: runner, log: log}
}

// Run executes every check in order and returns the findings.
func (a *Auditor) Run(ctx context.Context) *finding.List {
	out := &finding.List{}
	l := a.Layout
	pkgBin := l.Host(l.PackageBin)
	aixBin := l.Host(l.AIXBin)

	// shell
	if a.Env.Shell != l.Host(l.Shell) {
		out.Add(finding.Warning, "Not using "+l.Shell)
	}

	// required tools
	a.requireFile(out, finding.Error, l.PackageTool("yum"), "Yum binary "+l.PackageTool("yum")+" not present")
	a.requireFile(out, finding.Error, l.PackageTool("rpm"), "Rpm binary "+l.PackageTool("rpm")+" not present")
	a.requireFile(out, finding.Error, l.PackageTool("bash"), "Bash binary "+l.PackageTool("bash")+" not present")
	a.requireFile(out, finding.Error, l.PackageTool("readlink"), "Readlink binary "+l.PackageTool("readlink")+" not present")
	readlink := l.Host(l.PackageTool("readlink"))
	a.requireSuccess(ctx, out, finding.Error, []string{readlink, "-f", readlink},
		"Readlink "+l.PackageTool("readlink")+" binary does not work")

	if strings.Contains(a.resolve("tar"), l.Host(l.PASETool("tar"))) {
		out.Add(finding.Warning, "Using PASE tar (may want to install tar-gnu)")
	}

	// open-source package tree
	a.requireEntry(out, finding.Error, a.Env.Path, pkgBin,
		"PATH does not contain "+l.PackageBin+", where many OSS binaries are located")
	a.requireBinaryAt(out, finding.Error, "rpm", l.PackageTool("rpm"), "Not using proper RPM binary")
	a.requireBinaryAt(out, finding.Error, "ls", l.PackageTool("ls"),
		`Not using GNU coreutils (may need to install "coreutils-gnu" package or adjust PATH)`)

	// AIX Toolbox
	a.forbidEntry(out, finding.Error, a.Env.Path, aixBin, "PATH contains "+l.AIXBin+" (aix binaries)")
	a.forbidFile(out, finding.Warning, l.AIXTool("rpm"), "RPM in "+l.AIXTool("rpm")+" is an Aix binary")
	a.forbidFile(out, finding.Error, l.AIXTool("yum"), "YUM in "+l.AIXTool("yum")+" is an Aix binary")
	a.forbidFile(out, finding.Error, l.AIXTool("gcc"), "GCC in "+l.AIXTool("gcc")+" is an Aix binary")
	a.forbidFile(out, finding.Error, l.AIXAltTool("gcc"), "GCC in "+l.AIXAltTool("gcc")+" is an Aix binary")

	python := l.AIXTool("python")
	a.forbidBinaryUnder(out, finding.Error, "python", python, "Using Aix Python in "+l.AIXBin)
	a.forbidBinaryUnder(out, finding.Error, "python2", python, "Using Aix Python 2 in "+l.AIXBin)
	a.forbidBinaryUnder(out, finding.Error, "python3", python, "Using Aix Python 3 in "+l.AIXBin)

	a.forbidBinaryUnder(out, finding.Error, "rpm", l.AIXTool("rpm"), "Using Aix RPM from "+l.AIXBin)
	a.forbidBinaryUnder(out, finding.Error, "bash", l.AIXTool("bash"), "Using Aix bash from "+l.AIXBin)
	a.forbidBinaryUnder(out, finding.Error, "git", l.AIXTool("git"), "Using Aix GIT from "+l.AIXBin)

	a.requireBinaryAt(out, finding.Error, "curl", l.PackageTool("curl"), "Not using curl from "+l.PackageTool("curl"))

	// rpm database and packages
	a.requireSuccess(ctx, out, finding.Error, []string{l.Host(l.PackageTool("yum")), "check"},
		"RPM database sanity check failed")
	a.requirePackage(ctx, out, finding.Warning, "ca-certificates-mozilla",
		"ca-certificates-mozilla not installed - some networking commands may not work")
	a.requirePackage(ctx, out, finding.Error, "bash", "bash not installed through yum")
	a.requirePackage(ctx, out, finding.Error, "coreutils-gnu", "coreutils-gnu not installed through yum")

	// 5733-OPS
	if a.legacyProductInstalled(ctx) {
		out.Add(finding.Warning, l.LegacyProduct.ID+" is still installed")
	}

	ops := l.OPSPrefix
	id := l.LegacyProduct.ID
	a.forbidBinaryUnder(out, finding.Error, "python", ops, "Using "+id+" Python")
	a.forbidBinaryUnder(out, finding.Error, "python2", ops, "Using "+id+" Python 2")
	a.forbidBinaryUnder(out, finding.Error, "python3", ops, "Using "+id+" Python 3")
	a.forbidBinaryUnder(out, finding.Error, "node", ops, "Using "+id+" Node")
	a.forbidBinaryUnder(out, finding.Error, "npm", ops, "Using "+id+" Npm")
	a.forbidBinaryUnder(out, finding.Error, "bash", ops, "Using "+id+" Bash")

	a.log.WithFields(logrus.Fields{
		"errors":   len(out.Errors()),
		"warnings": len(out.Warnings()),
	}).Debug("audit complete")

	return out
}

// legacyProductInstalled asks CHKPRDOPT about the legacy product. The command reports an
// installed product by failing with the layout's presence message; any other outcome,
// including a clean exit or a launch failure, is treated as absent. This polarity is
// specific to how CHKPRDOPT behaves for 5733-OPS.
func (a *Auditor) legacyProductInstalled(ctx context.Context) bool {
	l := a.Layout
	res := a.Runner.Run(ctx, []string{l.Host(l.SystemCommand), l.ProductQuery()})
	present := res.ExitCode != 0 && strings.Contains(res.Stderr, l.LegacyProduct.PresentMessage)
	a.log.WithFields(logrus.Fields{
		"check":     "licensed-program",
		"product":   l.LegacyProduct.ID,
		"exit_code": res.ExitCode,
		"present":   present,
	}).Debug("checked")
	return present
}
