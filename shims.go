package pdfbookmark

// noopShim redefines pdfmark so that /OUT statements carried over from the
// input PDFs are dropped. The original operator is kept as originalpdfmark.
const noopShim = `% store the original pdfmark
/originalpdfmark { //pdfmark } bind def

% replace pdfmark with a wrapper that ignores OUT
/pdfmark
{
  {  % begin loop
      { counttomark pop }
    stopped
      { /pdfmark errordict /unmatchedmark get exec stop }
    if

    dup type /nametype ne
      { /pdfmark errordict /typecheck get exec stop }
    if

    dup /OUT eq
      { (Skipping OUT pdfmark\n) print cleartomark exit }
    if

    originalpdfmark exit

  } loop
} def
`

// restoreShim puts the original pdfmark back before the generated marks run.
const restoreShim = "/pdfmark { originalpdfmark } bind def\n"

// Temp file patterns for the Ghostscript invocation.
const (
	noopPattern    = "pdfmark-noop-*.ps"
	restorePattern = "pdfmark-restore-*.ps"
	marksPattern   = "pdfmark-*.ps"
)
