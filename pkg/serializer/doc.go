// Package serializer reads and writes structured data in the formats used by
// recipe-printer.
//
// Writers support three formats and are used to dump fetched recipes in
// dry-run mode:
//   - JSON: indented, machine-readable
//   - YAML: human-readable
//   - Table: flattened FIELD/VALUE rows keyed by the JSON field names
//
// Readers decode JSON, YAML and TOML and back the optional config file.
// The format of a file is chosen from its extension with FormatFromPath.
//
// Usage:
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	defer w.Close()
//	if err := w.Serialize(ctx, r); err != nil {
//		return err
//	}
//
//	reader, err := serializer.NewFileReaderAuto("~/.recipe-printer.toml")
//	if err != nil {
//		return err
//	}
//	defer reader.Close()
//	err = reader.Deserialize(&cfg)
package serializer
