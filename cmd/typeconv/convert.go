package main

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/viant/typeconv/conv"
	"github.com/viant/typeconv/conv/array"
	"github.com/viant/typeconv/visitor"
	"go.uber.org/zap"
)

var targetTypes = map[string]reflect.Type{
	"string":  reflect.TypeOf(""),
	"bool":    reflect.TypeOf(false),
	"int":     reflect.TypeOf(0),
	"int8":    reflect.TypeOf(int8(0)),
	"int16":   reflect.TypeOf(int16(0)),
	"int32":   reflect.TypeOf(int32(0)),
	"int64":   reflect.TypeOf(int64(0)),
	"uint":    reflect.TypeOf(uint(0)),
	"uint8":   reflect.TypeOf(uint8(0)),
	"uint16":  reflect.TypeOf(uint16(0)),
	"uint32":  reflect.TypeOf(uint32(0)),
	"uint64":  reflect.TypeOf(uint64(0)),
	"float32": reflect.TypeOf(float32(0)),
	"float64": reflect.TypeOf(float64(0)),
	"time":    reflect.TypeOf(time.Time{}),
}

func newConvertCmd(a *app) *cobra.Command {
	var typeName string
	cmd := &cobra.Command{
		Use:   "convert [value...]",
		Short: "Convert values to an array of the target type",
		Long: `Converts a single delimited text, or a list of values, to an array of the target type.
A single argument is split into fields with the configured delimiter.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			elementType, ok := targetTypes[typeName]
			if !ok {
				return fmt.Errorf("unsupported type %q, supported: %v", typeName, supportedTypes())
			}
			registry, err := a.registry()
			if err != nil {
				return err
			}
			var source interface{} = args
			if len(args) == 1 {
				source = args[0]
			}
			items, err := convertValues(registry, source, elementType)
			if err != nil {
				a.logger.Error("conversion failed", zap.String("type", typeName), zap.Error(err))
				return err
			}
			a.logger.Debug("converted", zap.String("type", typeName), zap.Int("elements", len(items)))
			options := registry.Options()
			data, err := encodeJSON(items, options.Layout())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().StringVarP(&typeName, "type", "t", "string", "target element type")
	return cmd
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List supported target types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range supportedTypes() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) registry() (*conv.Registry, error) {
	config, err := LoadConfig(a.configPath)
	if err != nil {
		return nil, err
	}
	if a.delimiter != "" {
		config.Delimiter = a.delimiter
	}
	options, err := config.Options(a.logger)
	if err != nil {
		return nil, err
	}
	return conv.NewRegistry(options), nil
}

func convertValues(registry *conv.Registry, source interface{}, elementType reflect.Type) ([]interface{}, error) {
	converter := array.NewDynamic(registry, elementType, array.WithSplitter(registry.Splitter()))
	converted, err := converter.Convert(source)
	if err != nil {
		return nil, err
	}
	visit, err := visitor.AnySliceVisitorOf(converted.Interface())
	if err != nil {
		return nil, err
	}
	return visitor.Collect(visit)
}

func supportedTypes() []string {
	names := make([]string, 0, len(targetTypes))
	for name := range targetTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
