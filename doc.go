/*
Command protosep computes pairwise statistics of protostars observed in the
same survey field.

Contents

  Program overview
  Installing
  Command line usage
  Settings
  File formats
  Algorithm outline


Program overview

Input is one or more comma separated tables of protostars, one table per
star forming region.  Objects sharing a field number form a group.  Within
a group, every member is compared to one reference member, by default the
first.  Each comparison gives an angular separation, an absolute
inclination difference, the error of that difference, and the larger of
the two disk radii.  Output is these values flattened over all tables,
or summary statistics of them.

Sample run:

  $ protosep summary -f yaml --bootstrap 200 per.csv ori.csv

Installing

You need a recent Go installed.  Then

    go install github.com/soniakeys/protosep@latest


Command line usage

  protosep summary [-f text|yaml|json] FILE...   Summary statistics.
  protosep list FILE...                          Groups and members.
  protosep values FIELD FILE...                  One field, one value per line.
  protosep fields                                Field names for values.
  protosep config                                Show settings.
  protosep --version                             Display version and copyright.

Global options:

  --config <file>       settings file
  -r, --reference <n>   index of the group member others are compared to

The summary command also accepts --bootstrap, --level and --seed for the
bootstrap interval of the median separation.


Settings

Settings are kept in a YAML file, by default proto_sep/proto_sep_config.yml
under the XDG configuration directory.  The file is created with defaults
the first time the program runs:

  logging:
    on: true
    level: WARNING

Level is one of DEBUG, INFO, WARNING, ERROR, CRITICAL.  With logging off,
nothing is logged regardless of level.  The environment variables
PROTOSEP_LOGGING_ON and PROTOSEP_LOGGING_LEVEL override the file.


File formats

Tables have a heading line naming at least the columns

  Name, RA, DEC, Inc, Inc_err, Rmaj, Tbol0

in any order.  RA and DEC are in degrees.  Names have the form
<region>_<field>_<object>, for example Per_12_3.  Missing values may be
empty or NA and are read as NaN.


Algorithm outline

1.  Rows are partitioned by field number and fields are processed in
ascending order.

2.  Rows with a non-finite RA are dropped.  A field left with fewer than
two rows is skipped with a warning.

3.  For every member other than the reference, the separation from the
reference is computed on the unit sphere, along with |ΔInc|,
sqrt(err1² + err2²) and max(Rmaj1, Rmaj2).  A group of N members thus
yields N-1 values of each.

4.  Catalog views concatenate these values region by region, group by group.

-------------
Public domain.
*/
package main
