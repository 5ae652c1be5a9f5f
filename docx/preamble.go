package docx

// documentPreamble is the fixed preamble every converted document gets. It
// covers everything the converter may emit: AMS math, graphics for extracted
// images, hyperref for \href, and ulem for \sout.
const documentPreamble = `\documentclass[12pt,a4paper]{article}

% Encoding and fonts
\usepackage[utf8]{inputenc}
\usepackage[T1]{fontenc}

% Math packages
\usepackage{amsmath}
\usepackage{amsfonts}
\usepackage{amssymb}
\usepackage{mathtools}

% Graphics
\usepackage{graphicx}
\usepackage{float}

% Tables
\usepackage{booktabs}
\usepackage{array}

% Links
\usepackage{hyperref}
\hypersetup{
    colorlinks=true,
    linkcolor=blue,
    filecolor=magenta,
    urlcolor=cyan,
}

% Text formatting
\usepackage{ulem}  % For strikethrough with \sout

% Page layout
\usepackage{geometry}
\geometry{margin=1in}

`
