package modes

// builtinEntries maps MIME types to their filename patterns and editor mode.
// The first pattern of an entry is its preferred extension.
var builtinEntries = []Entry{
	{MimeType: "application/json", Patterns: []string{"*.json", "*.map"}, Mode: "javascript"},
	{MimeType: "application/postscript", Patterns: []string{"*.ps", "*.eps"}, Mode: ""},
	{MimeType: "application/sieve", Patterns: []string{"*.siv", "*.sieve"}, Mode: "sieve"},
	{MimeType: "application/typescript", Patterns: []string{"*.ts"}, Mode: "javascript"},
	{MimeType: "application/x-actionscript", Patterns: []string{"*.as"}, Mode: ""},
	{MimeType: "application/x-actionscript3", Patterns: []string{"*.as"}, Mode: ""},
	{MimeType: "application/x-aspx", Patterns: []string{"*.aspx"}, Mode: "htmlembedded"},
	{MimeType: "application/x-awk", Patterns: []string{"*.awk"}, Mode: ""},
	{MimeType: "application/x-befunge", Patterns: []string{"*.befunge"}, Mode: ""},
	{MimeType: "application/x-brainfuck", Patterns: []string{"*.bf", "*.b"}, Mode: ""},
	{MimeType: "application/x-cheetah", Patterns: []string{"*.tmpl", "*.spt"}, Mode: ""},
	{MimeType: "application/x-coldfusion", Patterns: []string{"*.cfm", "*.cfml", "*.cfc"}, Mode: ""},
	{MimeType: "application/x-csh", Patterns: []string{"*.tcsh", "*.csh"}, Mode: ""},
	{MimeType: "application/x-dos-batch", Patterns: []string{"*.bat", "*.cmd"}, Mode: ""},
	{MimeType: "application/x-ecl", Patterns: []string{"*.ecl"}, Mode: ""},
	{MimeType: "application/x-ejs", Patterns: []string{"*.ejs"}, Mode: "htmlembedded"},
	{MimeType: "application/x-evoque", Patterns: []string{"*.evoque"}, Mode: ""},
	{MimeType: "application/x-fantom", Patterns: []string{"*.fan"}, Mode: ""},
	{MimeType: "application/x-genshi", Patterns: []string{"*.kid"}, Mode: ""},
	{MimeType: "application/x-gettext", Patterns: []string{"*.pot", "*.po"}, Mode: ""},
	{MimeType: "application/x-json", Patterns: []string{"*.json"}, Mode: ""},
	{MimeType: "application/x-jsp", Patterns: []string{"*.jsp"}, Mode: "htmlembedded"},
	{MimeType: "application/x-mako", Patterns: []string{"*.mako"}, Mode: ""},
	{MimeType: "application/x-mason", Patterns: []string{"*.m", "*.mhtml", "*.mc", "*.mi", "autohandler", "dhandler"}, Mode: ""},
	{MimeType: "application/x-myghty", Patterns: []string{"*.myt", "autodelegate"}, Mode: ""},
	{MimeType: "application/x-php", Patterns: []string{"*.phtml"}, Mode: ""},
	{MimeType: "application/x-pypylog", Patterns: []string{"*.pypylog"}, Mode: ""},
	{MimeType: "application/x-qml", Patterns: []string{"*.qml"}, Mode: ""},
	{MimeType: "application/x-sh-session", Patterns: []string{"*.shell-session"}, Mode: ""},
	{MimeType: "application/x-shell-session", Patterns: []string{"*.sh-session"}, Mode: ""},
	{MimeType: "application/x-smarty", Patterns: []string{"*.tpl"}, Mode: ""},
	{MimeType: "application/x-sparql-query", Patterns: nil, Mode: "sparql"},
	{MimeType: "application/x-ssp", Patterns: []string{"*.ssp"}, Mode: ""},
	{MimeType: "application/x-troff", Patterns: []string{"*.[1234567]", "*.man"}, Mode: ""},
	{MimeType: "application/x-urbiscript", Patterns: []string{"*.u"}, Mode: ""},
	{MimeType: "application/xml", Patterns: []string{"*.xml", "*.xsl", "*.rss", "*.xslt", "*.xsd", "*.wsdl"}, Mode: "xml"},
	{MimeType: "application/xml+evoque", Patterns: []string{"*.xml"}, Mode: ""},
	{MimeType: "application/xml-dtd", Patterns: []string{"*.dtd"}, Mode: "dtd"},
	{MimeType: "application/xquery", Patterns: []string{"*.xqy", "*.xquery", "*.xq", "*.xql", "*.xqm", "*.xy"}, Mode: "xquery"},
	{MimeType: "application/xsl+xml", Patterns: []string{"*.xsl", "*.xslt", "*.xpl"}, Mode: ""},
	{MimeType: "jinja2", Patterns: []string{".jinja2"}, Mode: "jinja2"},
	{MimeType: "message/http", Patterns: nil, Mode: "http"},
	{MimeType: "text/S-plus", Patterns: []string{"*.S", "*.R", ".Rhistory", ".Rprofile"}, Mode: ""},
	{MimeType: "text/apl", Patterns: []string{"*.dyalog", "*.pgp", "*.apl"}, Mode: "apl"},
	{MimeType: "text/coffeescript", Patterns: []string{"*.coffee"}, Mode: ""},
	{MimeType: "text/css", Patterns: []string{"*.css"}, Mode: "css"},
	{MimeType: "text/haxe", Patterns: []string{"*.hx"}, Mode: ""},
	{MimeType: "text/html", Patterns: []string{"*.html", "*.htm", "*.xhtml", "*.xslt"}, Mode: "htmlmixed"},
	{MimeType: "text/html+evoque", Patterns: []string{"*.html"}, Mode: ""},
	{MimeType: "text/html+ruby", Patterns: []string{"*.rhtml"}, Mode: ""},
	{MimeType: "text/idl", Patterns: []string{"*.pro"}, Mode: ""},
	{MimeType: "text/javascript", Patterns: []string{"*.js"}, Mode: "javascript"},
	{MimeType: "text/livescript", Patterns: []string{"*.ls"}, Mode: ""},
	{MimeType: "text/matlab", Patterns: []string{"*.m"}, Mode: ""},
	{MimeType: "text/mirc", Patterns: nil, Mode: "mirc"},
	{MimeType: "text/n-triples", Patterns: []string{"*.nt"}, Mode: "ntriples"},
	{MimeType: "text/octave", Patterns: []string{"*.m"}, Mode: ""},
	{MimeType: "text/plain", Patterns: []string{"*.txt", "*.text", "*.conf", "*.def", "*.list", "*.log"}, Mode: "null"},
	{MimeType: "text/scilab", Patterns: []string{"*.sci", "*.sce", "*.tst"}, Mode: ""},
	{MimeType: "text/smali", Patterns: []string{"*.smali"}, Mode: ""},
	{MimeType: "text/tiki", Patterns: nil, Mode: "tiki"},
	{MimeType: "text/vbscript", Patterns: []string{"*.vb", "*.vbs"}, Mode: "vbscript"},
	{MimeType: "text/velocity", Patterns: []string{"*.vtl"}, Mode: "velocity"},
	{MimeType: "text/x-abap", Patterns: []string{"*.abap"}, Mode: ""},
	{MimeType: "text/x-ada", Patterns: []string{"*.adb", "*.ads", "*.ada"}, Mode: ""},
	{MimeType: "text/x-apacheconf", Patterns: []string{".htaccess", "apache.conf", "apache2.conf"}, Mode: ""},
	{MimeType: "text/x-aspectj", Patterns: []string{"*.aj"}, Mode: ""},
	{MimeType: "text/x-asterisk", Patterns: nil, Mode: "asterisk"},
	{MimeType: "text/x-asymptote", Patterns: []string{"*.asy"}, Mode: ""},
	{MimeType: "text/x-autohotkey", Patterns: []string{"*.ahk", "*.ahkl"}, Mode: ""},
	{MimeType: "text/x-autoit", Patterns: []string{"*.au3"}, Mode: ""},
	{MimeType: "text/x-bmx", Patterns: []string{"*.bmx"}, Mode: ""},
	{MimeType: "text/x-boo", Patterns: []string{"*.boo"}, Mode: ""},
	{MimeType: "text/x-c", Patterns: []string{"*.c"}, Mode: "clike"},
	{MimeType: "text/x-c++hdr", Patterns: []string{"*.cpp", "*.hpp", "*.c++", "*.h++", "*.cc", "*.hh", "*.cxx", "*.hxx", "*.C", "*.H", "*.cp", "*.CPP"}, Mode: "clike"},
	{MimeType: "text/x-c++src", Patterns: []string{"*.cpp", "*.c++", "*.cc", "*.cxx", "*.hpp", "*.h++", "*.hh", "*.hxx"}, Mode: "clike"},
	{MimeType: "text/x-c-objdump", Patterns: []string{"*.c-objdump"}, Mode: ""},
	{MimeType: "text/x-ceylon", Patterns: []string{"*.ceylon"}, Mode: ""},
	{MimeType: "text/x-chdr", Patterns: []string{"*.c", "*.h", "*.idc"}, Mode: "clike"},
	{MimeType: "text/x-clojure", Patterns: []string{"*.clj"}, Mode: "clojure"},
	{MimeType: "text/x-cmake", Patterns: []string{"*.cmake", "CMakeLists.txt", "*.cmake.in"}, Mode: "cmake"},
	{MimeType: "text/x-cobol", Patterns: []string{"*.cob", "*.COB", "*.cpy", "*.CPY"}, Mode: "cobol"},
	{MimeType: "text/x-coffeescript", Patterns: []string{"*.coffee"}, Mode: "coffeescript"},
	{MimeType: "text/x-common-lisp", Patterns: []string{"*.cl", "*.lisp", "*.el"}, Mode: "commonlisp"},
	{MimeType: "text/x-coq", Patterns: []string{"*.v"}, Mode: ""},
	{MimeType: "text/x-cpp-objdump", Patterns: []string{"*.cpp-objdump", "*.c++-objdump", "*.cxx-objdump"}, Mode: ""},
	{MimeType: "text/x-crocsrc", Patterns: []string{"*.croc"}, Mode: ""},
	{MimeType: "text/x-csharp", Patterns: []string{"*.cs"}, Mode: "clike"},
	{MimeType: "text/x-csrc", Patterns: []string{"*.c", "*.h"}, Mode: "clike"},
	{MimeType: "text/x-cuda", Patterns: []string{"*.cu", "*.cuh"}, Mode: ""},
	{MimeType: "text/x-cython", Patterns: []string{"*.pyx", "*.pxd", "*.pxi"}, Mode: "python"},
	{MimeType: "text/x-d", Patterns: []string{"*.d"}, Mode: "d"},
	{MimeType: "text/x-d-objdump", Patterns: []string{"*.d-objdump"}, Mode: ""},
	{MimeType: "text/x-dart", Patterns: []string{"*.dart"}, Mode: ""},
	{MimeType: "text/x-dg", Patterns: []string{"*.dg"}, Mode: ""},
	{MimeType: "text/x-diff", Patterns: []string{"*.diff", "*.patch"}, Mode: "diff"},
	{MimeType: "text/x-dsrc", Patterns: []string{"*.d", "*.di"}, Mode: ""},
	{MimeType: "text/x-duel", Patterns: []string{"*.duel", "*.jbst"}, Mode: ""},
	{MimeType: "text/x-dylan", Patterns: []string{"*.dylan", "*.dyl", "*.intr"}, Mode: "dylan"},
	{MimeType: "text/x-dylan-console", Patterns: []string{"*.dylan-console"}, Mode: ""},
	{MimeType: "text/x-dylan-lid", Patterns: []string{"*.lid", "*.hdp"}, Mode: ""},
	{MimeType: "text/x-echdr", Patterns: []string{"*.ec", "*.eh"}, Mode: ""},
	{MimeType: "text/x-ecl", Patterns: []string{"*.ecl"}, Mode: "ecl"},
	{MimeType: "text/x-elixir", Patterns: []string{"*.ex", "*.exs"}, Mode: ""},
	{MimeType: "text/x-erl-shellsession", Patterns: []string{"*.erl-sh"}, Mode: ""},
	{MimeType: "text/x-erlang", Patterns: []string{"*.erl", "*.hrl", "*.es", "*.escript"}, Mode: "erlang"},
	{MimeType: "text/x-factor", Patterns: []string{"*.factor"}, Mode: "factor"},
	{MimeType: "text/x-fancysrc", Patterns: []string{"*.fy", "*.fancypack"}, Mode: ""},
	{MimeType: "text/x-felix", Patterns: []string{"*.flx", "*.flxh"}, Mode: ""},
	{MimeType: "text/x-fortran", Patterns: []string{"*.f", "*.f90", "*.F", "*.F90", "*.for", "*.f77"}, Mode: "fortran"},
	{MimeType: "text/x-fsharp", Patterns: []string{"*.fs", "*.fsi"}, Mode: "mllike"},
	{MimeType: "text/x-gas", Patterns: []string{"*.s", "*.S"}, Mode: "gas"},
	{MimeType: "text/x-gfm", Patterns: []string{"*.md", "*.MD"}, Mode: "gfm"},
	{MimeType: "text/x-gherkin", Patterns: []string{"*.feature"}, Mode: ""},
	{MimeType: "text/x-glslsrc", Patterns: []string{"*.vert", "*.frag", "*.geo"}, Mode: ""},
	{MimeType: "text/x-gnuplot", Patterns: []string{"*.plot", "*.plt"}, Mode: ""},
	{MimeType: "text/x-go", Patterns: []string{"*.go"}, Mode: "go"},
	{MimeType: "text/x-gooddata-cl", Patterns: []string{"*.gdc"}, Mode: ""},
	{MimeType: "text/x-gooddata-maql", Patterns: []string{"*.maql"}, Mode: ""},
	{MimeType: "text/x-gosrc", Patterns: []string{"*.go"}, Mode: ""},
	{MimeType: "text/x-gosu", Patterns: []string{"*.gs", "*.gsx", "*.gsp", "*.vark"}, Mode: ""},
	{MimeType: "text/x-gosu-template", Patterns: []string{"*.gst"}, Mode: ""},
	{MimeType: "text/x-groovy", Patterns: []string{"*.groovy"}, Mode: "groovy"},
	{MimeType: "text/x-haml", Patterns: []string{"*.haml"}, Mode: "haml"},
	{MimeType: "text/x-haskell", Patterns: []string{"*.hs"}, Mode: "haskell"},
	{MimeType: "text/x-haxe", Patterns: []string{"*.hx"}, Mode: "haxe"},
	{MimeType: "text/x-hybris", Patterns: []string{"*.hy", "*.hyb"}, Mode: ""},
	{MimeType: "text/x-ini", Patterns: []string{"*.ini", "*.cfg"}, Mode: ""},
	{MimeType: "text/x-iokesrc", Patterns: []string{"*.ik"}, Mode: ""},
	{MimeType: "text/x-iosrc", Patterns: []string{"*.io"}, Mode: ""},
	{MimeType: "text/x-irclog", Patterns: []string{"*.weechatlog"}, Mode: ""},
	{MimeType: "text/x-jade", Patterns: []string{"*.jade"}, Mode: "jade"},
	{MimeType: "text/x-java", Patterns: []string{"*.java"}, Mode: "clike"},
	{MimeType: "text/x-julia", Patterns: []string{"*.jl"}, Mode: "julia"},
	{MimeType: "text/x-kconfig", Patterns: []string{"Kconfig", "*Config.in*", "external.in*", "standard-modules.in"}, Mode: ""},
	{MimeType: "text/x-koka", Patterns: []string{"*.kk", "*.kki"}, Mode: ""},
	{MimeType: "text/x-kotlin", Patterns: []string{"*.kt"}, Mode: "clike"},
	{MimeType: "text/x-lasso", Patterns: []string{"*.lasso", "*.lasso[89]"}, Mode: ""},
	{MimeType: "text/x-latex", Patterns: []string{"*.ltx", "*.text"}, Mode: "stex"},
	{MimeType: "text/x-less", Patterns: []string{"*.less"}, Mode: "css"},
	{MimeType: "text/x-literate-haskell", Patterns: []string{"*.lhs"}, Mode: "haskell-literate"},
	{MimeType: "text/x-livescript", Patterns: []string{"*.ls"}, Mode: "livescript"},
	{MimeType: "text/x-llvm", Patterns: []string{"*.ll"}, Mode: ""},
	{MimeType: "text/x-logos", Patterns: []string{"*.x", "*.xi", "*.xm", "*.xmi"}, Mode: ""},
	{MimeType: "text/x-logtalk", Patterns: []string{"*.lgt"}, Mode: ""},
	{MimeType: "text/x-lua", Patterns: []string{"*.lua", "*.wlua"}, Mode: "lua"},
	{MimeType: "text/x-makefile", Patterns: []string{"*.mak", "Makefile", "makefile", "Makefile.*", "GNUmakefile"}, Mode: ""},
	{MimeType: "text/x-mariadb", Patterns: []string{"*.sql"}, Mode: "sql"},
	{MimeType: "text/x-markdown", Patterns: []string{"*.md", "*.markdown", "*.mdown", "*.mkd"}, Mode: "gfm"},
	{MimeType: "text/x-minidsrc", Patterns: []string{"*.md"}, Mode: "gfm"},
	{MimeType: "text/x-modelica", Patterns: []string{"*.mo"}, Mode: "modelica"},
	{MimeType: "text/x-modula2", Patterns: []string{"*.def", "*.mod"}, Mode: ""},
	{MimeType: "text/x-monkey", Patterns: []string{"*.monkey"}, Mode: ""},
	{MimeType: "text/x-moocode", Patterns: []string{"*.moo"}, Mode: ""},
	{MimeType: "text/x-moonscript", Patterns: []string{"*.moon"}, Mode: ""},
	{MimeType: "text/x-nasm", Patterns: []string{"*.asm", "*.ASM"}, Mode: ""},
	{MimeType: "text/x-nemerle", Patterns: []string{"*.n"}, Mode: ""},
	{MimeType: "text/x-newlisp", Patterns: []string{"*.lsp", "*.nl"}, Mode: ""},
	{MimeType: "text/x-newspeak", Patterns: []string{"*.ns2"}, Mode: ""},
	{MimeType: "text/x-nginx-conf", Patterns: []string{"*.conf"}, Mode: "nginx"},
	{MimeType: "text/x-nimrod", Patterns: []string{"*.nim", "*.nimrod"}, Mode: ""},
	{MimeType: "text/x-nsis", Patterns: []string{"*.nsi", "*.nsh"}, Mode: "nsis"},
	{MimeType: "text/x-objdump", Patterns: []string{"*.objdump"}, Mode: ""},
	{MimeType: "text/x-objective-c", Patterns: []string{"*.m", "*.h"}, Mode: ""},
	{MimeType: "text/x-objective-c++", Patterns: []string{"*.mm", "*.hh"}, Mode: ""},
	{MimeType: "text/x-objective-j", Patterns: []string{"*.j"}, Mode: ""},
	{MimeType: "text/x-ocaml", Patterns: []string{"*.ml", "*.mli", "*.mll", "*.mly"}, Mode: "mllike"},
	{MimeType: "text/x-ooc", Patterns: []string{"*.ooc"}, Mode: ""},
	{MimeType: "text/x-opa", Patterns: []string{"*.opa"}, Mode: ""},
	{MimeType: "text/x-openedge", Patterns: []string{"*.p", "*.cls"}, Mode: ""},
	{MimeType: "text/x-pascal", Patterns: []string{"*.pas", "*.p"}, Mode: "pascal"},
	{MimeType: "text/x-perl", Patterns: []string{"*.pl", "*.pm"}, Mode: "perl"},
	{MimeType: "text/x-php", Patterns: []string{"*.php", "*.php[345]", "*.inc"}, Mode: "php"},
	{MimeType: "text/x-pig", Patterns: []string{"*.pig"}, Mode: "pig"},
	{MimeType: "text/x-povray", Patterns: []string{"*.pov", "*.inc"}, Mode: ""},
	{MimeType: "text/x-powershell", Patterns: []string{"*.ps1"}, Mode: ""},
	{MimeType: "text/x-prolog", Patterns: []string{"*.prolog", "*.pro", "*.pl"}, Mode: ""},
	{MimeType: "text/x-properties", Patterns: []string{"*.properties", "*.ini", "*.in"}, Mode: "properties"},
	{MimeType: "text/x-python", Patterns: []string{"*.py", "*.pyw", "*.sc", "SConstruct", "SConscript", "*.tac", "*.sage"}, Mode: "python"},
	{MimeType: "text/x-python-traceback", Patterns: []string{"*.pytb"}, Mode: ""},
	{MimeType: "text/x-python3-traceback", Patterns: []string{"*.py3tb"}, Mode: ""},
	{MimeType: "text/x-r-doc", Patterns: []string{"*.Rd"}, Mode: ""},
	{MimeType: "text/x-racket", Patterns: []string{"*.rkt", "*.rktl"}, Mode: ""},
	{MimeType: "text/x-rebol", Patterns: []string{"*.r", "*.r3"}, Mode: ""},
	{MimeType: "text/x-robotframework", Patterns: []string{"*.txt", "*.robot"}, Mode: ""},
	{MimeType: "text/x-rpm-spec", Patterns: []string{"*.spec"}, Mode: "rpm"},
	{MimeType: "text/x-rsrc", Patterns: []string{"*.r"}, Mode: "r"},
	{MimeType: "text/x-rst", Patterns: []string{"*.rst", "*.rest"}, Mode: "rst"},
	{MimeType: "text/x-ruby", Patterns: []string{"*.rb", "*.rbw", "Rakefile", "*.rake", "*.gemspec", "*.rbx", "*.duby"}, Mode: "ruby"},
	{MimeType: "text/x-rustsrc", Patterns: []string{"*.rs", "*.rc"}, Mode: "rust"},
	{MimeType: "text/x-sass", Patterns: []string{"*.sass"}, Mode: "sass"},
	{MimeType: "text/x-scala", Patterns: []string{"*.scala"}, Mode: "clike"},
	{MimeType: "text/x-scaml", Patterns: []string{"*.scaml"}, Mode: ""},
	{MimeType: "text/x-scheme", Patterns: []string{"*.scm", "*.ss"}, Mode: "scheme"},
	{MimeType: "text/x-scss", Patterns: []string{"*.scss"}, Mode: "css"},
	{MimeType: "text/x-sh", Patterns: []string{"*.sh", "*.ksh", "*.bash", "*.ebuild", "*.eclass", ".bashrc", "bashrc", ".bash_*", "bash_*"}, Mode: "shell"},
	{MimeType: "text/x-smalltalk", Patterns: []string{"*.st"}, Mode: ""},
	{MimeType: "text/x-smarty", Patterns: []string{"*.tpl"}, Mode: "smarty"},
	{MimeType: "text/x-snobol", Patterns: []string{"*.snobol"}, Mode: ""},
	{MimeType: "text/x-sourcepawn", Patterns: []string{"*.sp"}, Mode: ""},
	{MimeType: "text/x-sql", Patterns: []string{"*.sql"}, Mode: "sql"},
	{MimeType: "text/x-sqlite3-console", Patterns: []string{"*.sqlite3-console"}, Mode: ""},
	{MimeType: "text/x-squidconf", Patterns: []string{"squid.conf"}, Mode: ""},
	{MimeType: "text/x-standardml", Patterns: []string{"*.sml", "*.sig", "*.fun"}, Mode: ""},
	{MimeType: "text/x-stex", Patterns: nil, Mode: "stex"},
	{MimeType: "text/x-stsrc", Patterns: []string{"*.rs", "*.rc", "*.st"}, Mode: "smalltalk"},
	{MimeType: "text/x-systemverilog", Patterns: []string{"*.sv", "*.svh", "*.v"}, Mode: "verilog"},
	{MimeType: "text/x-tcl", Patterns: []string{"*.tcl"}, Mode: "tcl"},
	{MimeType: "text/x-tea", Patterns: []string{"*.tea"}, Mode: ""},
	{MimeType: "text/x-tex", Patterns: []string{"*.tex", "*.aux", "*.toc"}, Mode: ""},
	{MimeType: "text/x-tiddlywiki", Patterns: nil, Mode: "tiddlywiki"},
	{MimeType: "text/x-typescript", Patterns: []string{"*.ts"}, Mode: ""},
	{MimeType: "text/x-vala", Patterns: []string{"*.vala", "*.vapi"}, Mode: ""},
	{MimeType: "text/x-vb", Patterns: []string{"*.vb"}, Mode: "vb"},
	{MimeType: "text/x-vbnet", Patterns: []string{"*.vb", "*.bas"}, Mode: ""},
	{MimeType: "text/x-verilog", Patterns: []string{"*.v"}, Mode: "verilog"},
	{MimeType: "text/x-vhdl", Patterns: []string{"*.vhdl", "*.vhd"}, Mode: "vhdl"},
	{MimeType: "text/x-vim", Patterns: []string{"*.vim", ".vimrc", ".exrc", ".gvimrc", "_vimrc", "_exrc", "_gvimrc", "vimrc", "gvimrc"}, Mode: ""},
	{MimeType: "text/x-windows-registry", Patterns: []string{"*.reg"}, Mode: ""},
	{MimeType: "text/x-xtend", Patterns: []string{"*.xtend"}, Mode: ""},
	{MimeType: "text/x-yaml", Patterns: []string{"*.yaml", "*.yml"}, Mode: "yaml"},
	{MimeType: "text/x-z80", Patterns: []string{"*.z80"}, Mode: "z80"},
	{MimeType: "text/xml", Patterns: []string{"*.xml", "*.xsl", "*.rss", "*.xslt", "*.xsd", "*.wsdl"}, Mode: ""},
	{MimeType: "text/xquery", Patterns: []string{"*.xqy", "*.xquery", "*.xq", "*.xql", "*.xqm"}, Mode: ""},
}

// extensionOverrides force a mode for a lowercase bare extension, ahead of
// any MIME based resolution.
var extensionOverrides = map[string]string{
	"md":       "markdown",
	"markdown": "markdown",
}
